// Package bootstrap holds the process wiring shared by every mesh binary: logger, config,
// tracer, metrics, downstream pools, servers and graceful shutdown.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"hotelmesh/adapters/mesh"
	"hotelmesh/adapters/tracing"
	"hotelmesh/adapters/transport"
	"hotelmesh/config"
	"hotelmesh/domain"
	"hotelmesh/interfaces"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ShutdownTimeout bounds graceful shutdown; servers still busy after it are stopped hard.
const ShutdownTimeout = 5 * time.Second

// NewLogger returns the logfmt logger of a binary.
func NewLogger(name domain.ServiceName) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)
	return log.With(logger, "service", string(name))
}

// Runtime is the started process: configuration plus the shared infrastructure the service
// is built on.
type Runtime struct {
	Config  *config.Config
	Logger  log.Logger
	Clock   interfaces.Clock
	Metrics *service.Metrics
	Pools   *service.PoolSet

	registry *prometheus.Registry
	tracer   *sdktrace.TracerProvider
	closers  []func() error
}

// Start loads the configuration of name and builds its runtime with real clock and gRPC
// transport.
func Start(name domain.ServiceName, logger log.Logger) (*Runtime, error) {
	cfg, err := config.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"listen_addr", cfg.ListenAddr(),
		"request_budget", cfg.RequestBudget,
		"retry_count", cfg.RetryCount,
		"metrics_addr", cfg.MetricsAddr,
	)
	dial := func(ctx context.Context, target string) (interfaces.TransportClient, error) {
		return transport.Dial(target)
	}
	return NewRuntime(context.Background(), cfg, logger, clockwork.NewRealClock(), dial)
}

// NewRuntime wires tracer, metrics and one connection pool per configured peer. On error every
// pool built so far is closed.
func NewRuntime(
	ctx context.Context,
	cfg *config.Config,
	logger log.Logger,
	clock interfaces.Clock,
	dial service.ClientFactory,
) (*Runtime, error) {
	tp, err := tracing.InitTracerProvider(string(cfg.Service), cfg.JaegerEndpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	pools := make(map[domain.ServiceName]interfaces.ConnectionPool, len(cfg.Peers()))
	for _, peer := range cfg.Peers() {
		p, err := service.NewConnectionPool(ctx, peer.Address, peer.PoolSize, dial, clock, logger,
			service.WithRetryPasses(cfg.PoolRetries),
			service.WithRetryDelay(cfg.PoolRetryDelay),
		)
		if err != nil {
			for _, built := range pools {
				_ = built.Close()
			}
			_ = tracing.Shutdown(ctx, tp)
			return nil, fmt.Errorf("connection pool for %s: %w", peer.Name, err)
		}
		pools[peer.Name] = p
		level.Info(logger).Log("msg", "Connection pool ready", "peer", peer.Name, "target", peer.Address, "size", peer.PoolSize)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(reg)
	poolSet := service.NewPoolSet(pools)
	metrics.RegisterPools(poolSet)

	return &Runtime{
		Config:   cfg,
		Logger:   logger,
		Clock:    clock,
		Metrics:  metrics,
		Pools:    poolSet,
		registry: reg,
		tracer:   tp,
	}, nil
}

// Pool returns the pool of peer. Peers are validated by config.Load, so a missing one is a
// wiring bug and panics.
func (r *Runtime) Pool(peer domain.ServiceName) interfaces.ConnectionPool {
	p, err := r.Pools.Get(peer)
	if err != nil {
		panic(fmt.Sprintf("cmd.internal.bootstrap: %v", err))
	}
	return p
}

// RetryPolicy is the whole-request retry of composite calls made at the edge.
func (r *Runtime) RetryPolicy() service.RetryPolicy {
	return service.RetryPolicy{
		Attempts: r.Config.RetryCount,
		Delay:    r.Config.RetryDelay,
		Clock:    r.Clock,
		Logger:   r.Logger,
	}
}

// OrchestratorOptions applies the configured request budget and metrics.
func (r *Runtime) OrchestratorOptions() []service.OrchestratorOption {
	return []service.OrchestratorOption{
		service.WithRequestBudget(r.Config.RequestBudget),
		service.WithMetrics(r.Metrics),
	}
}

// StubOptions times downstream stubs with the runtime clock.
func (r *Runtime) StubOptions() []mesh.Option {
	return []mesh.Option{mesh.WithClock(r.Clock)}
}

// OnClose registers fn to run on Close, after the servers stopped.
func (r *Runtime) OnClose(fn func() error) {
	r.closers = append(r.closers, fn)
}

// NewGRPCServer creates the mesh server of the service: error mapping and trace extraction
// interceptors, a worker pool sized by the service's workers, and the health service.
func (r *Runtime) NewGRPCServer() *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			transport.TraceServerInterceptor(),
			transport.RequestIDServerInterceptor(),
			service.MeshErrorToGRPCInterceptor(r.Logger),
		),
	}
	if workers := r.Config.Self().Workers; workers > 0 {
		opts = append(opts,
			grpc.NumStreamWorkers(uint32(workers)),
			grpc.MaxConcurrentStreams(uint32(workers)),
		)
	}
	srv := grpc.NewServer(opts...)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	return srv
}

// ServeGRPC serves srv on the configured port until ctx is done, then stops gracefully and
// closes the runtime.
func (r *Runtime) ServeGRPC(ctx context.Context, srv *grpc.Server) error {
	lis, err := net.Listen("tcp", r.Config.ListenAddr())
	if err != nil {
		r.Close()
		return fmt.Errorf("listen %s: %w", r.Config.ListenAddr(), err)
	}
	return r.ServeGRPCListener(ctx, srv, lis)
}

// ServeGRPCListener is ServeGRPC on an existing listener.
func (r *Runtime) ServeGRPCListener(ctx context.Context, srv *grpc.Server, lis net.Listener) error {
	defer r.Close()
	stopMetrics := r.startMetricsServer()
	defer stopMetrics()

	errCh := make(chan error, 1)
	go func() {
		level.Info(r.Logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("grpc server: %w", err)
	case <-ctx.Done():
	}
	level.Info(r.Logger).Log("msg", "Shutting down...")

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-r.Clock.After(ShutdownTimeout):
		level.Warn(r.Logger).Log("msg", "Graceful stop timed out, stopping")
		srv.Stop()
	}
	level.Info(r.Logger).Log("msg", "Server stopped")
	return nil
}

// ServeHTTP serves e on the configured port until ctx is done, then shuts it down and closes
// the runtime.
func (r *Runtime) ServeHTTP(ctx context.Context, e *echo.Echo) error {
	defer r.Close()
	stopMetrics := r.startMetricsServer()
	defer stopMetrics()

	errCh := make(chan error, 1)
	go func() {
		level.Info(r.Logger).Log("msg", "Starting HTTP server", "addr", r.Config.ListenAddr())
		errCh <- e.Start(r.Config.ListenAddr())
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	level.Info(r.Logger).Log("msg", "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(r.Logger).Log("msg", "Error during server shutdown", "err", err)
		_ = e.Close()
	}
	level.Info(r.Logger).Log("msg", "Server stopped")
	return nil
}

// startMetricsServer exposes /metrics on METRICS_ADDR when configured.
func (r *Runtime) startMetricsServer() func() {
	if r.Config.MetricsAddr == "" {
		return func() {}
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/metrics", echo.WrapHandler(r.MetricsHandler()))
	go func() {
		level.Info(r.Logger).Log("msg", "Starting metrics server", "addr", r.Config.MetricsAddr)
		if err := e.Start(r.Config.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(r.Logger).Log("msg", "Metrics server error", "err", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		_ = e.Shutdown(ctx)
	}
}

// MetricsHandler serves the runtime's registry in the Prometheus text format.
func (r *Runtime) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Close releases pools, registered closers and the tracer. Safe to call more than once.
func (r *Runtime) Close() {
	closers := r.closers
	r.closers = nil
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			level.Warn(r.Logger).Log("msg", "Close failed", "err", err)
		}
	}
	if r.Pools != nil {
		_ = r.Pools.Close()
	}
	if r.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(ctx, r.tracer); err != nil {
			level.Warn(r.Logger).Log("msg", "Tracer shutdown failed", "err", err)
		}
		r.tracer = nil
	}
}
