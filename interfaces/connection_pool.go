package interfaces

import (
	"context"

	"hotelmesh/domain"
)

// Lease is exclusive use of one pool slot, obtained from ConnectionPool.Acquire and handed
// back with ConnectionPool.Release.
type Lease interface {
	// Client returns the transport client owned by the lease.
	Client() TransportClient
}

// ConnectionPool is a fixed set of transport clients to one downstream peer, all allocated
// at construction. At most one caller holds a given client at any time.
//
// Acquire returns a lease on a free client, scanning from a rotating start index; when every
// client is busy it waits a short delay, scans once more and gives up.
// Release hands the client back; releasing a lease twice, or a lease of another pool, is a no-op.
// Close closes all clients; later Acquire calls fail with service.ErrConnPoolClosed.
//
// Called by adapters/mesh for every downstream call.
//
//go:generate moq -stub -out mock/connection_pool.go -pkg mock . ConnectionPool
type ConnectionPool interface {
	// Acquire leases a free client.
	// Parameter ctx — cancels the wait between scans.
	// Returns: (lease, nil) on success; (nil, service.ErrNoFreeConnection) when no client became free; (nil, service.ErrConnPoolClosed) after Close.
	Acquire(ctx context.Context) (Lease, error)

	// Release returns the leased client. hadErr increments the slot error counter, success resets it.
	Release(lease Lease, hadErr bool)

	// Target returns the peer address of the pool.
	Target() string

	// Stats returns a snapshot of every slot.
	Stats() []domain.SlotStats

	// Close closes all clients; idempotent.
	Close() error
}
