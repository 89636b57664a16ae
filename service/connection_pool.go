package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrConnPoolClosed is returned by Acquire once the pool has been closed.
var ErrConnPoolClosed = errors.New("conn pool is closed")

// ErrNoFreeConnection is returned by Acquire when every client stayed busy through all scans.
var ErrNoFreeConnection = errors.New("no free connection in pool")

const (
	defaultRetryPasses = 1
	defaultRetryDelay  = time.Millisecond

	slotFree      uint64 = 0
	slotReleasing uint64 = math.MaxUint64
)

// ClientFactory dials one transport client to target.
type ClientFactory func(ctx context.Context, target string) (interfaces.TransportClient, error)

// PoolOption tunes a connection pool.
type PoolOption func(*connectionPool)

// WithRetryPasses sets how many extra full scans Acquire makes after the first one fails.
func WithRetryPasses(n int) PoolOption {
	return func(p *connectionPool) {
		if n >= 0 {
			p.retryPasses = n
		}
	}
}

// WithRetryDelay sets the pause before each extra scan.
func WithRetryDelay(d time.Duration) PoolOption {
	return func(p *connectionPool) {
		if d >= 0 {
			p.retryDelay = d
		}
	}
}

// poolSlot is one client of the pool. owner is slotFree, slotReleasing, or the generation of
// the lease holding the slot; a slot is claimed only by CAS from slotFree.
type poolSlot struct {
	client   interfaces.TransportClient
	owner    atomic.Uint64
	lastUsed atomic.Int64
	errors   atomic.Int64
}

// connectionPool implements interfaces.ConnectionPool over a fixed slice of slots. Acquire
// starts its scan at an atomically advanced cursor so concurrent callers spread over the
// slots, and claims a slot with a single compare-and-swap; no mutex is taken on the hot path.
// Every lease carries a unique generation, so Release of a stale lease cannot free a slot
// that has since been claimed by someone else.
type connectionPool struct {
	target      string
	slots       []poolSlot
	cursor      atomic.Uint64
	generation  atomic.Uint64
	retryPasses int
	retryDelay  time.Duration
	clock       interfaces.Clock
	logger      log.Logger

	closed    atomic.Bool
	closeOnce sync.Once
}

// lease implements interfaces.Lease.
type lease struct {
	pool *connectionPool
	slot int
	gen  uint64
}

func (l *lease) Client() interfaces.TransportClient {
	return l.pool.slots[l.slot].client
}

// NewConnectionPool dials size clients to target through factory and returns the pool. Panics
// on empty target or nil factory, clock or logger.
//
// Parameters: ctx — for dialing; target — peer address; size — number of clients (must be
// positive); factory — dials one client; clock — time source for the retry delay and
// last-used stamps; logger — logger; opts — WithRetryPasses, WithRetryDelay.
//
// Returns: (pool, nil) on success; (nil, error) on non-positive size or when any dial fails, in
// which case the clients dialed so far are closed.
//
// Called from cmd/internal/bootstrap for every downstream peer of a service.
func NewConnectionPool(
	ctx context.Context,
	target string,
	size int,
	factory ClientFactory,
	clock interfaces.Clock,
	logger log.Logger,
	opts ...PoolOption,
) (interfaces.ConnectionPool, error) {
	p := &connectionPool{
		target:      helpers.StrPanic(target, "service.connection_pool.go: target is required"),
		retryPasses: defaultRetryPasses,
		retryDelay:  defaultRetryDelay,
		clock:       helpers.NilPanic(clock, "service.connection_pool.go: clock is required"),
		logger:      log.With(helpers.NilPanic(logger, "service.connection_pool.go: logger is required"), "component", "connection_pool", "target", target),
	}
	helpers.NilPanic(factory, "service.connection_pool.go: factory is required")
	for _, opt := range opts {
		opt(p)
	}
	if size <= 0 {
		return nil, fmt.Errorf("pool size for %s must be positive, got %d", target, size)
	}

	p.slots = make([]poolSlot, size)
	for i := range p.slots {
		client, err := factory(ctx, target)
		if err != nil {
			for j := 0; j < i; j++ {
				_ = p.slots[j].client.Close()
			}
			return nil, fmt.Errorf("dial %s (client %d of %d): %w", target, i+1, size, err)
		}
		p.slots[i].client = client
	}
	level.Debug(p.logger).Log("msg", "connection pool ready", "size", size)
	return p, nil
}

// Acquire leases a free client: one full wraparound scan, then for each retry pass a pause of
// retryDelay and another full scan. Cancelling ctx ends the wait early.
//
// Returns: (lease, nil) on success; (nil, ErrNoFreeConnection) when no slot freed up or ctx
// was cancelled during the pause; (nil, ErrConnPoolClosed) after Close.
//
// Called from adapters/mesh before every downstream call.
func (p *connectionPool) Acquire(ctx context.Context) (interfaces.Lease, error) {
	for pass := 0; ; pass++ {
		if p.closed.Load() {
			return nil, ErrConnPoolClosed
		}
		if l := p.scan(); l != nil {
			return l, nil
		}
		if pass >= p.retryPasses {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ErrNoFreeConnection
		case <-p.clock.After(p.retryDelay):
		}
	}
	return nil, ErrNoFreeConnection
}

// scan visits every slot once starting at the next cursor position and claims the first free one.
func (p *connectionPool) scan() *lease {
	n := uint64(len(p.slots))
	start := p.cursor.Add(1) % n
	gen := p.generation.Add(1)
	for i := uint64(0); i < n; i++ {
		idx := (start + i) % n
		s := &p.slots[idx]
		if s.owner.CompareAndSwap(slotFree, gen) {
			s.lastUsed.Store(p.clock.Now().UnixNano())
			return &lease{pool: p, slot: int(idx), gen: gen}
		}
	}
	return nil
}

// Release hands a leased client back. The slot's error counter is reset on success and
// incremented on failure; the counter is informational and never evicts a client.
// Releasing nil, a lease of another pool, or a lease already released is a no-op.
//
// Called from adapters/mesh on every exit path of a downstream call.
func (p *connectionPool) Release(l interfaces.Lease, hadErr bool) {
	own, ok := l.(*lease)
	if !ok || own == nil || own.pool != p {
		return
	}
	s := &p.slots[own.slot]
	if !s.owner.CompareAndSwap(own.gen, slotReleasing) {
		return
	}
	s.lastUsed.Store(p.clock.Now().UnixNano())
	if hadErr {
		s.errors.Add(1)
	} else {
		s.errors.Store(0)
	}
	s.owner.Store(slotFree)
}

func (p *connectionPool) Target() string {
	return p.target
}

// Stats returns a snapshot of every slot; concurrent Acquire/Release may move on while it runs.
func (p *connectionPool) Stats() []domain.SlotStats {
	out := make([]domain.SlotStats, len(p.slots))
	for i := range p.slots {
		s := &p.slots[i]
		var lastUsed time.Time
		if ns := s.lastUsed.Load(); ns != 0 {
			lastUsed = time.Unix(0, ns).UTC()
		}
		out[i] = domain.SlotStats{
			Index:    i,
			InUse:    s.owner.Load() != slotFree,
			LastUsed: lastUsed,
			Errors:   s.errors.Load(),
		}
	}
	return out
}

// Close marks the pool closed and closes every client. Idempotent: repeated calls return nil.
//
// Called from PoolSet.Close on shutdown.
func (p *connectionPool) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		for i := range p.slots {
			if err := p.slots[i].client.Close(); err != nil {
				level.Warn(p.logger).Log("msg", "close client", "slot", i, "err", err)
			}
		}
	})
	return nil
}
