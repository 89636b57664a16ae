package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelmesh/adapters/mesh"
	"hotelmesh/adapters/seed"
	"hotelmesh/api"
	"hotelmesh/cmd/internal/bootstrap"
	"hotelmesh/domain"
	"hotelmesh/handlers"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := bootstrap.NewLogger(domain.ServiceRecommendation)
	level.Info(logger).Log("msg", "Starting recommendation service")

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "Recommendation service failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	rt, err := bootstrap.Start(domain.ServiceRecommendation, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recommend *service.RecommendationService
	{
		profiles := mesh.NewProfileClient(rt.Pool(domain.ServiceProfile), rt.Metrics, rt.StubOptions()...)
		rates := mesh.NewRateClient(rt.Pool(domain.ServiceRate), rt.Metrics, rt.StubOptions()...)
		recommend = service.NewRecommendationService(seed.Attributes(), profiles, rates, rt.Clock, logger, rt.OrchestratorOptions()...)
	}

	srv := rt.NewGRPCServer()
	handlers.Register(srv, api.RecommendationServiceName, handlers.RecommendationRoutes(recommend))
	return rt.ServeGRPC(ctx, srv)
}
