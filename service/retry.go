package service

import (
	"context"
	"time"

	"hotelmesh/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// RetryPolicy retries a whole composite operation a fixed number of times with a fixed delay.
// Only failures accepted by Retryable (IsRetryable when nil) are retried; business outcomes
// are results, not errors, so they are never retried.
type RetryPolicy struct {
	Attempts  int
	Delay     time.Duration
	Clock     interfaces.Clock
	Logger    log.Logger
	Retryable func(error) bool
}

// Unsent narrows p to failures where the request never left the caller. Operations that change
// state downstream use it: a lost response after a successful call must not repeat the call.
func (p RetryPolicy) Unsent() RetryPolicy {
	p.Retryable = IsPoolExhausted
	return p
}

// Retry runs fn under policy. Attempts below 1 mean a single attempt. The wait between attempts
// ends early when ctx is done, returning the last error.
func Retry[T any](ctx context.Context, policy RetryPolicy, op string, fn func(context.Context) (T, error)) (T, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	logger := policy.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	retryable := policy.Retryable
	if retryable == nil {
		retryable = IsRetryable
	}

	var (
		result T
		err    error
	)
	for attempt := 1; ; attempt++ {
		result, err = fn(ctx)
		if err == nil || !retryable(err) || attempt >= attempts {
			return result, err
		}
		level.Debug(logger).Log("msg", "retrying operation", "op", op, "attempt", attempt, "err", err)
		if policy.Delay > 0 && policy.Clock != nil {
			select {
			case <-ctx.Done():
				return result, err
			case <-policy.Clock.After(policy.Delay):
			}
		}
	}
}
