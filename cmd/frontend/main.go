package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotelmesh/adapters/mesh"
	"hotelmesh/cmd/internal/bootstrap"
	"hotelmesh/domain"
	"hotelmesh/handlers"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	logger := bootstrap.NewLogger(domain.ServiceFrontend)
	level.Info(logger).Log("msg", "Starting frontend")

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "Frontend failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	rt, err := bootstrap.Start(domain.ServiceFrontend, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var frontend *handlers.Frontend
	{
		frontend = handlers.NewFrontend(
			mesh.NewSearchClient(rt.Pool(domain.ServiceSearch), rt.Metrics, rt.StubOptions()...),
			mesh.NewRecommendationClient(rt.Pool(domain.ServiceRecommendation), rt.Metrics, rt.StubOptions()...),
			mesh.NewUserClient(rt.Pool(domain.ServiceUser), rt.Metrics, rt.StubOptions()...),
			mesh.NewReservationClient(rt.Pool(domain.ServiceReservation), rt.Metrics, rt.StubOptions()...),
			rt.RetryPolicy(),
			logger,
		)
	}

	var validator echo.MiddlewareFunc
	{
		doc, err := handlers.LoadFrontendDocument()
		if err != nil {
			rt.Close()
			return fmt.Errorf("load openapi document: %w", err)
		}
		if validator, err = handlers.OpenAPIValidator(doc); err != nil {
			rt.Close()
			return fmt.Errorf("build openapi validator: %w", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterFrontend(e, frontend, handlers.FrontendOptions{
		Workers:   rt.Config.Self().Workers,
		Validator: validator,
		Metrics:   rt.Metrics,
	})
	return rt.ServeHTTP(ctx, e)
}
