// Package mesh holds the downstream stubs: typed clients that call another mesh service
// through a connection pool, one wire round trip per call.
package mesh

import (
	"context"
	"errors"
	"fmt"

	"hotelmesh/api"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"
	"hotelmesh/service"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "hotelmesh/adapters/mesh"

// Option tunes a stub.
type Option func(*caller)

// WithTracerProvider makes the stub start its client spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *caller) {
		c.tracer = tp.Tracer(instrumentationName)
	}
}

// WithClock sets the clock downstream latency is measured with.
func WithClock(clock interfaces.Clock) Option {
	return func(c *caller) {
		c.clock = helpers.NilPanic(clock, "adapters.mesh.invoke.go: clock is required")
	}
}

// caller is the state shared by all typed stubs: the pool of the peer, metrics, a tracer and
// the clock timing each call.
type caller struct {
	pool    interfaces.ConnectionPool
	metrics *service.Metrics
	tracer  trace.Tracer
	clock   interfaces.Clock
}

func newCaller(pool interfaces.ConnectionPool, metrics *service.Metrics, opts []Option) caller {
	c := caller{
		pool:    helpers.NilPanic(pool, "adapters.mesh.invoke.go: pool is required"),
		metrics: metrics,
		tracer:  otel.Tracer(instrumentationName),
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// invoke performs one downstream call of method: budget check, pool acquisition, request
// encoding, the transport call and response decoding. The leased client is released exactly
// once on every path, marked errored unless the response decoded cleanly.
//
// Returns: (response, nil) on success; otherwise a MeshError coded request_timeout (budget
// spent before the call, or the peer reported a deadline), pool_exhausted (no free client),
// downstream_unavailable (transport failure or non-OK status), malformed_input or
// entity_not_found (peer rejected the request), malformed_response (undecodable body).
func invoke[Resp any, Req any](ctx context.Context, c caller, method string, req Req) (resp Resp, err error) {
	if err = service.BudgetFromContext(ctx).Check(method); err != nil {
		return resp, err
	}

	ctx, span := c.tracer.Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("rpc.system", "grpc"),
		attribute.String("rpc.method", method),
		attribute.String("net.peer.name", c.pool.Target()),
	)

	start := c.clock.Now()
	defer func() {
		c.metrics.ObserveDownstream(method, service.ErrorCode(err), c.clock.Now().Sub(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	payload, err := api.Marshal(req)
	if err != nil {
		return resp, service.NewInternalServerError("encode "+method+" request", err)
	}

	lease, err := c.pool.Acquire(ctx)
	if err != nil {
		if errors.Is(err, service.ErrConnPoolClosed) {
			return resp, service.NewDownstreamUnavailableError(method+" unavailable", err)
		}
		return resp, service.NewPoolExhaustedError(fmt.Sprintf("no free connection to %s", c.pool.Target()), err)
	}
	hadErr := true
	defer func() { c.pool.Release(lease, hadErr) }()

	out, err := lease.Client().Call(ctx, method, payload)
	if err != nil {
		return resp, service.MeshErrorFromGRPC(err, method)
	}
	if err = api.Unmarshal(out, &resp); err != nil {
		return resp, service.NewMalformedResponseError(method+" returned an unreadable response", err)
	}
	hadErr = false
	return resp, nil
}
