package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelmesh/adapters/mesh"
	"hotelmesh/api"
	"hotelmesh/cmd/internal/bootstrap"
	"hotelmesh/domain"
	"hotelmesh/handlers"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := bootstrap.NewLogger(domain.ServiceSearch)
	level.Info(logger).Log("msg", "Starting search service")

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "Search service failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	rt, err := bootstrap.Start(domain.ServiceSearch, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var search *service.SearchService
	{
		geo := mesh.NewGeoClient(rt.Pool(domain.ServiceGeo), rt.Metrics, rt.StubOptions()...)
		rates := mesh.NewRateClient(rt.Pool(domain.ServiceRate), rt.Metrics, rt.StubOptions()...)
		profiles := mesh.NewProfileClient(rt.Pool(domain.ServiceProfile), rt.Metrics, rt.StubOptions()...)
		search = service.NewSearchService(geo, rates, profiles, rt.Clock, logger, rt.OrchestratorOptions()...)
	}

	srv := rt.NewGRPCServer()
	handlers.Register(srv, api.SearchServiceName, handlers.SearchRoutes(search))
	return rt.ServeGRPC(ctx, srv)
}
