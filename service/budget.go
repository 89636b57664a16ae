package service

import (
	"context"
	"fmt"
	"time"

	"hotelmesh/helpers"
	"hotelmesh/interfaces"
)

// DefaultRequestBudget is the processing budget of one externally facing request.
const DefaultRequestBudget = 100 * time.Millisecond

// Budget is the single deadline of one request. It is checked cooperatively at phase
// boundaries; it never interrupts a downstream call that has already started.
type Budget struct {
	op       string
	deadline time.Time
	clock    interfaces.Clock
}

// NewBudget starts a budget of limit for operation op, measured from clock.Now().
func NewBudget(clock interfaces.Clock, op string, limit time.Duration) *Budget {
	clock = helpers.NilPanic(clock, "service.budget.go: clock is required")
	return &Budget{
		op:       op,
		deadline: clock.Now().Add(limit),
		clock:    clock,
	}
}

// Check returns a request_timeout error when the deadline has passed; phase names the boundary
// being crossed and ends up in the error message. A nil budget never expires.
func (b *Budget) Check(phase string) error {
	if b == nil {
		return nil
	}
	if now := b.clock.Now(); !now.Before(b.deadline) {
		return NewRequestTimeoutError(
			fmt.Sprintf("%s exceeded its processing budget before %s", b.op, phase),
			fmt.Errorf("deadline %s passed by %s", b.deadline.Format(time.RFC3339Nano), now.Sub(b.deadline)),
		)
	}
	return nil
}

// Remaining returns the time left, zero once expired.
func (b *Budget) Remaining() time.Duration {
	if b == nil {
		return 0
	}
	if d := b.deadline.Sub(b.clock.Now()); d > 0 {
		return d
	}
	return 0
}

type budgetKey struct{}

// WithBudget threads b through ctx so every downstream call boundary below can check it.
func WithBudget(ctx context.Context, b *Budget) context.Context {
	return context.WithValue(ctx, budgetKey{}, b)
}

// BudgetFromContext returns the budget stored by WithBudget, or nil.
func BudgetFromContext(ctx context.Context) *Budget {
	b, _ := ctx.Value(budgetKey{}).(*Budget)
	return b
}
