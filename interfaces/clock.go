package interfaces

import "time"

// Clock is the time source of the pool and the request budget. clockwork.Clock satisfies it.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}
