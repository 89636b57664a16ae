package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Check(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewBudget(clock, "search", DefaultRequestBudget)

	require.NoError(t, b.Check("geo"))
	assert.Equal(t, 100*time.Millisecond, b.Remaining())

	clock.Advance(99 * time.Millisecond)
	require.NoError(t, b.Check("rate"))
	assert.Equal(t, time.Millisecond, b.Remaining())

	clock.Advance(time.Millisecond)
	err := b.Check("profile")
	require.Error(t, err)
	assert.True(t, IsRequestTimeout(err))
	assert.Contains(t, err.Error(), "search exceeded its processing budget before profile")
	assert.Zero(t, b.Remaining())
}

func TestBudget_Nil(t *testing.T) {
	var b *Budget
	assert.NoError(t, b.Check("anything"))
	assert.Zero(t, b.Remaining())
}

func TestBudget_Context(t *testing.T) {
	assert.Nil(t, BudgetFromContext(context.Background()))

	b := NewBudget(clockwork.NewFakeClock(), "search", time.Second)
	ctx := WithBudget(context.Background(), b)
	assert.Same(t, b, BudgetFromContext(ctx))
}
