package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotelmesh/adapters/memstore"
	"hotelmesh/adapters/redis"
	"hotelmesh/adapters/seed"
	"hotelmesh/api"
	"hotelmesh/cmd/internal/bootstrap"
	"hotelmesh/domain"
	"hotelmesh/handlers"
	"hotelmesh/interfaces"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := bootstrap.NewLogger(domain.ServiceUser)
	level.Info(logger).Log("msg", "Starting user service")

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "User service failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	rt, err := bootstrap.Start(domain.ServiceUser, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var userStore interfaces.UserStore
	if rt.Config.RedisAddr == "" {
		userStore = memstore.NewUserStore(seed.Users())
		level.Info(logger).Log("msg", "Using in-memory user store")
	} else {
		redisClient, err := redis.NewRedisUniversalClient(rt.Config.RedisAddr)
		if err != nil {
			rt.Close()
			return fmt.Errorf("create redis client: %w", err)
		}
		rt.OnClose(redisClient.Close)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			rt.Close()
			return fmt.Errorf("ping redis: %w", err)
		}
		store := redis.NewUserStore(redisClient)
		created, err := store.Seed(ctx, seed.Users())
		if err != nil {
			rt.Close()
			return fmt.Errorf("seed users: %w", err)
		}
		level.Info(logger).Log("msg", "Using redis user store", "seeded", created)
		userStore = store
	}

	srv := rt.NewGRPCServer()
	handlers.Register(srv, api.UserServiceName, handlers.UserRoutes(service.NewUserService(userStore)))
	return rt.ServeGRPC(ctx, srv)
}
