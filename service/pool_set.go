package service

import (
	"errors"
	"fmt"

	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"
)

// ErrUnknownDownstream is returned by PoolSet.Get for a service that has no pool.
var ErrUnknownDownstream = errors.New("unknown downstream service")

// PoolSet resolves a downstream service name to its connection pool. Built once at startup
// from the service's configured peers.
type PoolSet struct {
	pools map[domain.ServiceName]interfaces.ConnectionPool
}

// NewPoolSet creates a PoolSet. Panics on a nil map.
func NewPoolSet(pools map[domain.ServiceName]interfaces.ConnectionPool) *PoolSet {
	return &PoolSet{
		pools: helpers.NilPanic(pools, "service.pool_set.go: pools is required"),
	}
}

// Get returns the pool for name.
//
// Returns: (pool, nil); (nil, ErrUnknownDownstream) when name was not configured.
func (s *PoolSet) Get(name domain.ServiceName) (interfaces.ConnectionPool, error) {
	p := s.pools[name]
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDownstream, name)
	}
	return p, nil
}

// All returns every pool keyed by service name. The returned map must not be modified.
func (s *PoolSet) All() map[domain.ServiceName]interfaces.ConnectionPool {
	return s.pools
}

// Close closes all pools. Errors from individual pools are not aggregated; returns nil.
func (s *PoolSet) Close() error {
	for _, p := range s.pools {
		_ = p.Close()
	}
	return nil
}
