// Package cache holds the Redis client and the read-through card cache built on it.
package cache

import (
	"context"
	"log/slog"
	"time"

	"tarjeta/config"
	"tarjeta/internal/domain/lifecycle"
	"tarjeta/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	poolTimeout     = 30 * time.Second
	connMaxIdleTime = 5 * time.Minute
)

// RedisParams holds dependencies for the Redis client, injected by Fx
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedis creates the shared Redis client. It returns a nil client when Redis is
// disabled; every consumer treats nil as "no Redis".
func NewRedis(params RedisParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, card cache and distributed rate limiting are off")

		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns
	opts.PoolTimeout = poolTimeout
	opts.ConnMaxIdleTime = connMaxIdleTime

	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
