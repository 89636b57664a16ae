package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotelmesh/helpers"
	"hotelmesh/interfaces"
	"hotelmesh/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFactory returns a factory producing distinct TransportClientMocks, recorded in order.
func mockFactory(clients *[]*mock.TransportClientMock) ClientFactory {
	var mu sync.Mutex
	return func(ctx context.Context, target string) (interfaces.TransportClient, error) {
		mu.Lock()
		defer mu.Unlock()
		c := &mock.TransportClientMock{TargetFunc: func() string { return target }}
		*clients = append(*clients, c)
		return c, nil
	}
}

func newTestPool(t *testing.T, size int, clock interfaces.Clock, opts ...PoolOption) (interfaces.ConnectionPool, []*mock.TransportClientMock) {
	t.Helper()
	var clients []*mock.TransportClientMock
	p, err := NewConnectionPool(context.Background(), "geo:8083", size, mockFactory(&clients), clock, log.NewNopLogger(), opts...)
	require.NoError(t, err)
	return p, clients
}

func TestNewConnectionPool_Panics(t *testing.T) {
	var clients []*mock.TransportClientMock
	factory := mockFactory(&clients)
	clock := clockwork.NewFakeClock()
	logger := log.NewNopLogger()
	ctx := context.Background()

	assert.PanicsWithValue(t, "service.connection_pool.go: target is required", func() {
		_, _ = NewConnectionPool(ctx, "", 1, factory, clock, logger)
	})
	assert.PanicsWithValue(t, "service.connection_pool.go: factory is required", func() {
		_, _ = NewConnectionPool(ctx, "geo:8083", 1, nil, clock, logger)
	})
	assert.PanicsWithValue(t, "service.connection_pool.go: clock is required", func() {
		_, _ = NewConnectionPool(ctx, "geo:8083", 1, factory, nil, logger)
	})
	assert.PanicsWithValue(t, "service.connection_pool.go: logger is required", func() {
		_, _ = NewConnectionPool(ctx, "geo:8083", 1, factory, clock, nil)
	})
}

func TestNewConnectionPool_Errors(t *testing.T) {
	t.Run("non-positive size", func(t *testing.T) {
		var clients []*mock.TransportClientMock
		p, err := NewConnectionPool(context.Background(), "geo:8083", 0, mockFactory(&clients), clockwork.NewFakeClock(), log.NewNopLogger())
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Empty(t, clients)
	})

	t.Run("dial failure closes dialed clients", func(t *testing.T) {
		var dialed []*mock.TransportClientMock
		calls := 0
		factory := func(ctx context.Context, target string) (interfaces.TransportClient, error) {
			calls++
			if calls == 3 {
				return nil, errors.New("dial refused")
			}
			c := &mock.TransportClientMock{}
			dialed = append(dialed, c)
			return c, nil
		}
		p, err := NewConnectionPool(context.Background(), "geo:8083", 4, factory, clockwork.NewFakeClock(), log.NewNopLogger())
		require.Error(t, err)
		assert.Nil(t, p)
		require.Len(t, dialed, 2)
		for _, c := range dialed {
			assert.Len(t, c.CloseCalls(), 1)
		}
	})
}

func TestConnectionPool_AcquireDistinctClients(t *testing.T) {
	p, clients := newTestPool(t, 3, clockwork.NewFakeClockAt(helpers.TestNow()), WithRetryPasses(0))
	require.Len(t, clients, 3)
	assert.Equal(t, "geo:8083", p.Target())

	seen := map[interfaces.TransportClient]bool{}
	for i := 0; i < 3; i++ {
		l, err := p.Acquire(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[l.Client()], "client leased twice")
		seen[l.Client()] = true
	}

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrNoFreeConnection)

	for _, s := range p.Stats() {
		assert.True(t, s.InUse)
		assert.True(t, helpers.TestNow().Equal(s.LastUsed))
	}
}

func TestConnectionPool_RetryAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p, _ := newTestPool(t, 1, clock, WithRetryDelay(time.Millisecond))

	held, err := p.Acquire(context.Background())
	require.NoError(t, err)

	t.Run("slot freed during the pause is picked up", func(t *testing.T) {
		done := make(chan error, 1)
		go func() {
			l, err := p.Acquire(context.Background())
			if err == nil {
				p.Release(l, false)
			}
			done <- err
		}()
		clock.BlockUntil(1)
		p.Release(held, false)
		clock.Advance(time.Millisecond)
		require.NoError(t, <-done)
	})

	t.Run("still busy after the pause", func(t *testing.T) {
		held, err := p.Acquire(context.Background())
		require.NoError(t, err)
		defer p.Release(held, false)

		done := make(chan error, 1)
		go func() {
			_, err := p.Acquire(context.Background())
			done <- err
		}()
		clock.BlockUntil(1)
		clock.Advance(time.Millisecond)
		assert.ErrorIs(t, <-done, ErrNoFreeConnection)
	})

	t.Run("cancelled context ends the pause", func(t *testing.T) {
		held, err := p.Acquire(context.Background())
		require.NoError(t, err)
		defer p.Release(held, false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = p.Acquire(ctx)
		assert.ErrorIs(t, err, ErrNoFreeConnection)
	})
}

func TestConnectionPool_SaturatedReturnsQuickly(t *testing.T) {
	p, _ := newTestPool(t, 2, clockwork.NewRealClock())
	for i := 0; i < 2; i++ {
		_, err := p.Acquire(context.Background())
		require.NoError(t, err)
	}

	start := time.Now()
	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrNoFreeConnection)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestConnectionPool_ReleaseIsIdempotent(t *testing.T) {
	p, _ := newTestPool(t, 1, clockwork.NewFakeClock(), WithRetryPasses(0))

	first, err := p.Acquire(context.Background())
	require.NoError(t, err)
	p.Release(first, false)
	p.Release(first, false)

	second, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, first.Client(), second.Client())

	// A stale release of the first lease must not free the slot now owned by second.
	p.Release(first, true)
	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrNoFreeConnection)
	assert.Equal(t, int64(0), p.Stats()[0].Errors)

	p.Release(second, false)
	_, err = p.Acquire(context.Background())
	assert.NoError(t, err)
}

func TestConnectionPool_ReleaseForeignLease(t *testing.T) {
	p, _ := newTestPool(t, 1, clockwork.NewFakeClock(), WithRetryPasses(0))
	other, _ := newTestPool(t, 1, clockwork.NewFakeClock(), WithRetryPasses(0))

	l, err := p.Acquire(context.Background())
	require.NoError(t, err)

	other.Release(l, false)
	p.Release(nil, false)
	p.Release(&lease{}, false)

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrNoFreeConnection, "foreign releases must not free the slot")
}

func TestConnectionPool_ErrorCounter(t *testing.T) {
	p, _ := newTestPool(t, 1, clockwork.NewFakeClock(), WithRetryPasses(0))

	for i := 0; i < 3; i++ {
		l, err := p.Acquire(context.Background())
		require.NoError(t, err)
		p.Release(l, true)
	}
	assert.Equal(t, int64(3), p.Stats()[0].Errors)

	l, err := p.Acquire(context.Background())
	require.NoError(t, err)
	p.Release(l, false)
	assert.Equal(t, int64(0), p.Stats()[0].Errors)
	assert.False(t, p.Stats()[0].InUse)
}

func TestConnectionPool_Close(t *testing.T) {
	p, clients := newTestPool(t, 3, clockwork.NewFakeClock())

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	for _, c := range clients {
		assert.Len(t, c.CloseCalls(), 1)
	}

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrConnPoolClosed)
}

// TestConnectionPool_MutualExclusion hammers the pool from many goroutines and verifies that no
// client is ever held by two callers at once.
func TestConnectionPool_MutualExclusion(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		goroutines int
		rounds     int
	}{
		{name: "small pool heavy contention", size: 8, goroutines: 2000, rounds: 5},
		{name: "large pool", size: 1000, goroutines: 5000, rounds: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, clients := newTestPool(t, tt.size, clockwork.NewRealClock(), WithRetryPasses(3))
			holders := make(map[interfaces.TransportClient]*atomic.Int32, len(clients))
			for _, c := range clients {
				holders[c] = &atomic.Int32{}
			}

			var violations, acquired, exhausted atomic.Int64
			var wg sync.WaitGroup
			start := make(chan struct{})
			for g := 0; g < tt.goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					for r := 0; r < tt.rounds; r++ {
						l, err := p.Acquire(context.Background())
						if err != nil {
							exhausted.Add(1)
							continue
						}
						acquired.Add(1)
						h := holders[l.Client()]
						if !h.CompareAndSwap(0, 1) {
							violations.Add(1)
						}
						h.Store(0)
						p.Release(l, false)
					}
				}()
			}
			close(start)
			wg.Wait()

			assert.Zero(t, violations.Load())
			assert.Equal(t, int64(tt.goroutines*tt.rounds), acquired.Load()+exhausted.Load())
			assert.Positive(t, acquired.Load())
			for _, s := range p.Stats() {
				assert.False(t, s.InUse)
			}
		})
	}
}
