// Package cardsource selects the reader behind the public card view.
package cardsource

import (
	"log/slog"
	"time"

	"tarjeta/config"
	"tarjeta/internal/domain/constants"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/infra/cache"
	"tarjeta/internal/infra/remote"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the card source, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Cards  repository.CardRepository
	Redis  *redis.Client `optional:"true"`
}

// Result exposes the public reader and the cache that owner-side writes invalidate.
type Result struct {
	fx.Out

	Reader repository.CardReader
	Cache  service.CardCache
}

// New builds the public CardReader from config: the database or a remote API,
// wrapped in the Redis cache when Redis is available.
func New(params Params) (Result, error) {
	reader, err := newSource(params.Config.CardSource, params.Cards, params.Logger)
	if err != nil {
		return Result{}, err
	}

	if params.Redis == nil {
		return Result{Reader: reader, Cache: cache.NoopCardCache{}}, nil
	}

	var ttl time.Duration
	if params.Config.Redis != nil {
		ttl = params.Config.Redis.CardTTL
	}
	cached := cache.NewCachedCardReader(reader, params.Redis, ttl, params.Logger)

	return Result{Reader: cached, Cache: cached}, nil
}

func newSource(cfg *config.CardSourceConfig, cards repository.CardRepository, logger *slog.Logger) (repository.CardReader, error) {
	if cfg == nil || cfg.Type == "" || cfg.Type == constants.CardSourceDatabase {
		return cards, nil
	}

	if cfg.Type != constants.CardSourceRemote {
		return nil, errors.Errorf("unknown card source: %s", cfg.Type)
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required for remote card source")
	}
	logger.Info("Reading public cards from remote API", slog.String("base_url", cfg.BaseURL))

	return remote.NewCardClient(cfg.BaseURL, cfg.Timeout, logger), nil
}
