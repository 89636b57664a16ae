package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelmesh/adapters/kafka"
	"hotelmesh/adapters/mesh"
	"hotelmesh/adapters/seed"
	"hotelmesh/api"
	"hotelmesh/cmd/internal/bootstrap"
	"hotelmesh/config"
	"hotelmesh/domain"
	"hotelmesh/handlers"
	"hotelmesh/interfaces"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := bootstrap.NewLogger(domain.ServiceReservation)
	level.Info(logger).Log("msg", "Starting reservation service")

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "Reservation service failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	rt, err := bootstrap.Start(domain.ServiceReservation, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var ledger *service.Ledger
	{
		var opts []service.LedgerOption
		if rt.Config.LedgerLocking == config.LedgerLockingPerHotel {
			opts = append(opts, service.WithPerHotelLocking())
		}
		ledger = service.NewLedger(seed.Inventories(), opts...)
		level.Info(logger).Log("msg", "Ledger ready", "locking", rt.Config.LedgerLocking)
	}

	var publisher interfaces.ReservationPublisher
	if rt.Config.KafkaBrokers != "" {
		p := kafka.NewPublisher(rt.Config.KafkaBrokers, rt.Config.KafkaTopic)
		rt.OnClose(p.Close)
		publisher = p
		level.Info(logger).Log("msg", "Publishing confirmed reservations", "brokers", rt.Config.KafkaBrokers)
	}

	users := mesh.NewUserClient(rt.Pool(domain.ServiceUser), rt.Metrics, rt.StubOptions()...)
	reservations := service.NewReservationService(users, ledger, publisher, rt.Clock, logger, rt.OrchestratorOptions()...)

	srv := rt.NewGRPCServer()
	handlers.Register(srv, api.ReservationServiceName, handlers.ReservationRoutes(reservations))
	return rt.ServeGRPC(ctx, srv)
}
