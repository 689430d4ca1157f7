package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"tarjeta/config"
	"tarjeta/internal/delivery"
	"tarjeta/internal/delivery/worker"
	"tarjeta/internal/delivery/worker/handler"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/infra/cache"
	logs "tarjeta/internal/infra/log"
	"tarjeta/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		cache.NewRedis,
		newCardCache,
	)
}

// newCardCache evicts from the shared Redis; the worker never reads cards itself.
func newCardCache(cfg *config.Config, rdb *redis.Client, logger *slog.Logger) service.CardCache {
	if rdb == nil {
		return cache.NoopCardCache{}
	}

	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.CardTTL
	}

	return cache.NewCachedCardReader(nil, rdb, ttl, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEventService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Shutdown runs every OnStop hook before exiting.
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
