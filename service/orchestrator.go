package service

import (
	"context"
	"time"

	"hotelmesh/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hotelmesh/service")

// OrchestratorOption tunes the search, recommendation and reservation services.
type OrchestratorOption func(*orchestrator)

// WithRequestBudget overrides DefaultRequestBudget.
func WithRequestBudget(d time.Duration) OrchestratorOption {
	return func(o *orchestrator) {
		if d > 0 {
			o.budget = d
		}
	}
}

// WithMetrics records booking outcomes in m.
func WithMetrics(m *Metrics) OrchestratorOption {
	return func(o *orchestrator) {
		o.metrics = m
	}
}

// orchestrator is the entry-point plumbing shared by composite services.
type orchestrator struct {
	clock   interfaces.Clock
	budget  time.Duration
	metrics *Metrics
}

func newOrchestrator(clock interfaces.Clock, opts []OrchestratorOption) orchestrator {
	o := orchestrator{clock: clock, budget: DefaultRequestBudget}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// begin starts the span and the budget of one inbound request. The budget is threaded through
// ctx so the downstream stubs check it before every call.
func (o orchestrator) begin(ctx context.Context, op string) (context.Context, *Budget, trace.Span) {
	ctx, span := tracer.Start(ctx, op)
	b := NewBudget(o.clock, op, o.budget)
	return WithBudget(ctx, b), b, span
}

// endSpan marks span failed when err is set and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
