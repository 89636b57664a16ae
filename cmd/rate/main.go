package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

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
	logger := bootstrap.NewLogger(domain.ServiceRate)
	level.Info(logger).Log("msg", "Starting rate service")

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "Rate service failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	rt, err := bootstrap.Start(domain.ServiceRate, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := rt.NewGRPCServer()
	handlers.Register(srv, api.RateServiceName, handlers.RateRoutes(service.NewRateTable(seed.RoomTypes())))
	return rt.ServeGRPC(ctx, srv)
}
