package mesh

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelmesh/api"
	"hotelmesh/domain"
	"hotelmesh/interfaces"
	"hotelmesh/interfaces/mock"
	"hotelmesh/service"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testLease struct {
	client interfaces.TransportClient
}

func (l *testLease) Client() interfaces.TransportClient { return l.client }

// newPool returns a pool mock handing out a single lease on client.
func newPool(client interfaces.TransportClient, acquireErr error) *mock.ConnectionPoolMock {
	return &mock.ConnectionPoolMock{
		AcquireFunc: func(ctx context.Context) (interfaces.Lease, error) {
			if acquireErr != nil {
				return nil, acquireErr
			}
			return &testLease{client: client}, nil
		},
		TargetFunc: func() string { return "geo:8083" },
	}
}

func replyWith(t *testing.T, v any) func(ctx context.Context, method string, payload []byte) ([]byte, error) {
	t.Helper()
	data, err := api.Marshal(v)
	require.NoError(t, err)
	return func(ctx context.Context, method string, payload []byte) ([]byte, error) {
		return data, nil
	}
}

func TestInvoke_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		acquireErr error
		call       func(ctx context.Context, method string, payload []byte) ([]byte, error)
		wantCode   string
		wantCall   bool
		wantErrRel bool
	}{
		{
			name:     "success",
			call:     replyWith(t, api.NearbyResponse{HotelIDs: []string{"3", "5"}}),
			wantCall: true,
		},
		{
			name:       "pool exhausted fails before any call",
			acquireErr: service.ErrNoFreeConnection,
			wantCode:   service.ErrPoolExhausted,
		},
		{
			name:       "closed pool",
			acquireErr: service.ErrConnPoolClosed,
			wantCode:   service.ErrDownstreamUnavailable,
		},
		{
			name: "transport failure",
			call: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
				return nil, status.Error(codes.Unavailable, "connection refused")
			},
			wantCode:   service.ErrDownstreamUnavailable,
			wantCall:   true,
			wantErrRel: true,
		},
		{
			name: "peer deadline",
			call: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
				return nil, status.Error(codes.DeadlineExceeded, "too slow")
			},
			wantCode:   service.ErrRequestTimeout,
			wantCall:   true,
			wantErrRel: true,
		},
		{
			name: "undecodable body",
			call: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
				return []byte("{not json"), nil
			},
			wantCode:   service.ErrMalformedResponse,
			wantCall:   true,
			wantErrRel: true,
		},
		{
			name: "empty body",
			call: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
				return nil, nil
			},
			wantCode:   service.ErrMalformedResponse,
			wantCall:   true,
			wantErrRel: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mock.TransportClientMock{CallFunc: tt.call}
			pool := newPool(client, tt.acquireErr)
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			metrics := service.NewMetrics(prometheus.NewRegistry())

			geo := NewGeoClient(pool, metrics, WithTracerProvider(tp))
			ids, err := geo.Nearby(context.Background(), domain.Point{Lat: 37.7749, Lon: -122.4194})

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, []string{"3", "5"}, ids)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, service.ErrorCode(err))
				assert.Nil(t, ids)
			}

			if tt.wantCall {
				require.Len(t, client.CallCalls(), 1)
				assert.Equal(t, api.MethodNearby, client.CallCalls()[0].Method)
				assert.JSONEq(t, `{"lat":37.7749,"lon":-122.4194}`, string(client.CallCalls()[0].Payload))
				require.Len(t, pool.ReleaseCalls(), 1, "lease must be released exactly once")
				assert.Equal(t, tt.wantErrRel, pool.ReleaseCalls()[0].HadErr)
			} else {
				assert.Empty(t, client.CallCalls())
				assert.Empty(t, pool.ReleaseCalls())
			}

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, api.MethodNearby, spans[0].Name())
			if tt.wantCode == "" {
				assert.NotEqual(t, otelcodes.Error, spans[0].Status().Code)
			} else {
				assert.Equal(t, otelcodes.Error, spans[0].Status().Code)
			}

			outcome := tt.wantCode
			if outcome == "" {
				outcome = "ok"
			}
			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DownstreamCalls.WithLabelValues(api.MethodNearby, outcome)))
		})
	}
}

func TestInvoke_ExpiredBudgetSkipsTheCall(t *testing.T) {
	clock := clockwork.NewFakeClock()
	budget := service.NewBudget(clock, "search", 100*time.Millisecond)
	clock.Advance(150 * time.Millisecond)
	ctx := service.WithBudget(context.Background(), budget)

	client := &mock.TransportClientMock{}
	pool := newPool(client, nil)

	_, err := NewProfileClient(pool, nil).GetProfiles(ctx, []string{"1"}, "en")
	require.Error(t, err)
	assert.True(t, service.IsRequestTimeout(err))
	assert.Empty(t, pool.AcquireCalls())
	assert.Empty(t, client.CallCalls())
}

func TestInvoke_LatencyUsesClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	reply := replyWith(t, api.NearbyResponse{HotelIDs: []string{"3"}})
	client := &mock.TransportClientMock{CallFunc: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
		clock.Advance(250 * time.Millisecond)
		return reply(ctx, method, payload)
	}}
	reg := prometheus.NewRegistry()
	metrics := service.NewMetrics(reg)

	_, err := NewGeoClient(newPool(client, nil), metrics, WithClock(clock)).Nearby(context.Background(), domain.Point{})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() != "hotelmesh_downstream_latency_seconds" {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(1), h.GetSampleCount())
		assert.InDelta(t, 0.25, h.GetSampleSum(), 1e-9)
		found = true
	}
	assert.True(t, found)
}

func TestInvoke_PanicsWithoutPool(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.mesh.invoke.go: pool is required", func() {
		NewRateClient(nil, nil)
	})
}

func TestTypedClients(t *testing.T) {
	ctx := context.Background()
	profile := api.Hotel{ID: "3", Name: "Hotel Zetta", Address: api.Address{City: "San Francisco"}}

	t.Run("geo point", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.PointResponse{Lat: 37.78, Lon: -122.40})}
		p, err := NewGeoClient(newPool(client, nil), nil).Point(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, domain.Point{Lat: 37.78, Lon: -122.40}, p)
		assert.Equal(t, api.MethodPoint, client.CallCalls()[0].Method)
	})

	t.Run("geo point not found", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
			return nil, status.Error(codes.NotFound, "hotel 99 not found")
		}}
		_, err := NewGeoClient(newPool(client, nil), nil).Point(ctx, "99")
		assert.True(t, service.IsEntityNotFound(err))
	})

	t.Run("rates", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.GetRatesResponse{RatePlans: []api.RatePlan{
			{HotelID: "1", Code: "RACK", RoomType: api.RoomType{Code: "KNG", BookableRate: 109}},
		}})}
		plans, err := NewRateClient(newPool(client, nil), nil).GetRates(ctx, []string{"1"}, "2024-06-01", "2024-06-02")
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, 109.0, plans[0].RoomType.BookableRate)
		assert.JSONEq(t, `{"hotel_ids":["1"],"in_date":"2024-06-01","out_date":"2024-06-02"}`, string(client.CallCalls()[0].Payload))
	})

	t.Run("profiles keep order", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.GetProfilesResponse{Hotels: []api.Hotel{{ID: "5"}, profile}})}
		got, err := NewProfileClient(newPool(client, nil), nil).GetProfiles(ctx, []string{"3", "5"}, "en")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "5", got[0].ID)
		assert.Equal(t, "San Francisco", got[1].Address.City)
	})

	t.Run("user register and check", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
			if method == api.MethodRegister {
				return api.Marshal(api.RegisterResponse{Message: "User already exists", Registered: false})
			}
			return api.Marshal(api.CheckUserResponse{Exists: true})
		}}
		users := NewUserClient(newPool(client, nil), nil)

		outcome, err := users.Register(ctx, domain.User{Username: "Cornell_1", Password: "1111111111"})
		require.NoError(t, err)
		assert.Equal(t, domain.AlreadyExists, outcome)

		ok, err := users.Check(ctx, domain.User{Username: "Cornell_1", Password: "1111111111"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("search", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.SearchResponse{Hotels: []api.Hotel{profile}})}
		got, err := NewSearchClient(newPool(client, nil), nil).Search(ctx, domain.SearchRequest{
			InDate: "2024-06-01", OutDate: "2024-06-02", Origin: domain.Point{Lat: 37.7749, Lon: -122.4194},
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Hotel Zetta", got[0].Name)
	})

	t.Run("recommend", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.RecommendResponse{Hotels: []api.Hotel{profile}})}
		got, err := NewRecommendationClient(newPool(client, nil), nil).Recommend(ctx, domain.RecommendationRequest{Require: "rate"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.JSONEq(t, `{"require":"rate","lat":0,"lon":0}`, string(client.CallCalls()[0].Payload))
	})

	t.Run("reserve", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.ReserveResponse{
			Message: "No availability for the selected dates", Outcome: "no_availability",
		})}
		got, err := NewReservationClient(newPool(client, nil), nil).Reserve(ctx, domain.ReservationRequest{HotelID: "1", Rooms: 1})
		require.NoError(t, err)
		assert.Equal(t, domain.BookingNoAvailability, got.Outcome)
	})

	t.Run("reserve unknown outcome", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: replyWith(t, api.ReserveResponse{Outcome: "waitlisted"})}
		_, err := NewReservationClient(newPool(client, nil), nil).Reserve(ctx, domain.ReservationRequest{HotelID: "1", Rooms: 1})
		assert.True(t, service.IsMalformedResponse(err))
	})

	t.Run("remote malformed input", func(t *testing.T) {
		client := &mock.TransportClientMock{CallFunc: func(ctx context.Context, method string, payload []byte) ([]byte, error) {
			return nil, status.Error(codes.InvalidArgument, "in_date must be YYYY-MM-DD")
		}}
		_, err := NewReservationClient(newPool(client, nil), nil).Reserve(ctx, domain.ReservationRequest{})
		require.Error(t, err)
		assert.True(t, service.IsMalformedInput(err))
		assert.False(t, errors.Is(err, context.Canceled))
	})
}
