package mesh

import (
	"context"
	"fmt"

	"hotelmesh/api"
	"hotelmesh/domain"
	"hotelmesh/interfaces"
	"hotelmesh/service"
)

// GeoClient implements interfaces.GeoService against a remote geo service.
type GeoClient struct{ caller }

func NewGeoClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *GeoClient {
	return &GeoClient{newCaller(pool, metrics, opts)}
}

func (c *GeoClient) Nearby(ctx context.Context, origin domain.Point) ([]string, error) {
	resp, err := invoke[api.NearbyResponse](ctx, c.caller, api.MethodNearby, api.NearbyRequest{Lat: origin.Lat, Lon: origin.Lon})
	if err != nil {
		return nil, err
	}
	return resp.HotelIDs, nil
}

func (c *GeoClient) Point(ctx context.Context, hotelID string) (domain.Point, error) {
	resp, err := invoke[api.PointResponse](ctx, c.caller, api.MethodPoint, api.PointRequest{HotelID: hotelID})
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Point{Lat: resp.Lat, Lon: resp.Lon}, nil
}

// RateClient implements interfaces.RateService against a remote rate service.
type RateClient struct{ caller }

func NewRateClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *RateClient {
	return &RateClient{newCaller(pool, metrics, opts)}
}

func (c *RateClient) GetRates(ctx context.Context, hotelIDs []string, inDate, outDate string) ([]domain.RatePlan, error) {
	resp, err := invoke[api.GetRatesResponse](ctx, c.caller, api.MethodGetRates, api.GetRatesRequest{
		HotelIDs: hotelIDs,
		InDate:   inDate,
		OutDate:  outDate,
	})
	if err != nil {
		return nil, err
	}
	return api.ToRatePlans(resp.RatePlans), nil
}

// ProfileClient implements interfaces.ProfileService against a remote profile service.
type ProfileClient struct{ caller }

func NewProfileClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *ProfileClient {
	return &ProfileClient{newCaller(pool, metrics, opts)}
}

func (c *ProfileClient) GetProfiles(ctx context.Context, hotelIDs []string, locale string) ([]domain.HotelProfile, error) {
	resp, err := invoke[api.GetProfilesResponse](ctx, c.caller, api.MethodGetProfiles, api.GetProfilesRequest{
		HotelIDs: hotelIDs,
		Locale:   locale,
	})
	if err != nil {
		return nil, err
	}
	return api.ToProfiles(resp.Hotels), nil
}

// UserClient implements interfaces.UserService against a remote user service.
type UserClient struct{ caller }

func NewUserClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *UserClient {
	return &UserClient{newCaller(pool, metrics, opts)}
}

func (c *UserClient) Register(ctx context.Context, user domain.User) (domain.RegistrationOutcome, error) {
	resp, err := invoke[api.RegisterResponse](ctx, c.caller, api.MethodRegister, api.RegisterRequest{
		Username: user.Username,
		Password: user.Password,
	})
	if err != nil {
		return domain.AlreadyExists, err
	}
	if resp.Registered {
		return domain.Registered, nil
	}
	return domain.AlreadyExists, nil
}

func (c *UserClient) Check(ctx context.Context, user domain.User) (bool, error) {
	resp, err := invoke[api.CheckUserResponse](ctx, c.caller, api.MethodCheckUser, api.CheckUserRequest{
		Username: user.Username,
		Password: user.Password,
	})
	if err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// SearchClient implements interfaces.SearchService against a remote search orchestrator.
type SearchClient struct{ caller }

func NewSearchClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *SearchClient {
	return &SearchClient{newCaller(pool, metrics, opts)}
}

func (c *SearchClient) Search(ctx context.Context, req domain.SearchRequest) ([]domain.HotelProfile, error) {
	resp, err := invoke[api.SearchResponse](ctx, c.caller, api.MethodSearch, api.FromSearchRequest(req))
	if err != nil {
		return nil, err
	}
	return api.ToProfiles(resp.Hotels), nil
}

// RecommendationClient implements interfaces.RecommendationService against a remote
// recommendation orchestrator.
type RecommendationClient struct{ caller }

func NewRecommendationClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *RecommendationClient {
	return &RecommendationClient{newCaller(pool, metrics, opts)}
}

func (c *RecommendationClient) Recommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.HotelProfile, error) {
	resp, err := invoke[api.RecommendResponse](ctx, c.caller, api.MethodRecommend, api.FromRecommendationRequest(req))
	if err != nil {
		return nil, err
	}
	return api.ToProfiles(resp.Hotels), nil
}

// ReservationClient implements interfaces.ReservationService against a remote reservation service.
type ReservationClient struct{ caller }

func NewReservationClient(pool interfaces.ConnectionPool, metrics *service.Metrics, opts ...Option) *ReservationClient {
	return &ReservationClient{newCaller(pool, metrics, opts)}
}

// Reserve returns malformed_response when the peer answers with an outcome this build does
// not know.
func (c *ReservationClient) Reserve(ctx context.Context, req domain.ReservationRequest) (domain.BookingResult, error) {
	resp, err := invoke[api.ReserveResponse](ctx, c.caller, api.MethodReserve, api.FromReservationRequest(req))
	if err != nil {
		return domain.BookingResult{}, err
	}
	outcome, ok := domain.ParseBookingOutcome(resp.Outcome)
	if !ok {
		return domain.BookingResult{}, service.NewMalformedResponseError(
			fmt.Sprintf("%s returned unknown outcome %q", api.MethodReserve, resp.Outcome), nil)
	}
	return domain.BookingResult{Outcome: outcome, ReservationID: resp.ReservationID}, nil
}
