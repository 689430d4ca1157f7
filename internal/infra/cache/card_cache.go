package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultCardTTL = 5 * time.Minute

// CachedCardReader decorates a CardReader with a Redis read-through cache.
// Redis failures never fail a read; the underlying reader is used instead.
type CachedCardReader struct {
	next   repository.CardReader
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var (
	_ repository.CardReader = (*CachedCardReader)(nil)
	_ service.CardCache     = (*CachedCardReader)(nil)
)

// NewCachedCardReader wraps next. A zero or negative ttl uses the default.
func NewCachedCardReader(next repository.CardReader, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedCardReader {
	if ttl <= 0 {
		ttl = defaultCardTTL
	}

	return &CachedCardReader{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func slugKey(slug string) string {
	return "card:slug:" + slug
}

func linksKey(cardID uuid.UUID) string {
	return "card:links:" + cardID.String()
}

// FindBySlug serves from cache when possible. Not-found results are not cached.
func (c *CachedCardReader) FindBySlug(ctx context.Context, slug string) (*entity.Card, error) {
	var card entity.Card
	if c.get(ctx, slugKey(slug), &card) {
		return &card, nil
	}

	found, err := c.next.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.set(ctx, slugKey(slug), found)

	return found, nil
}

// ListLinks serves the ordered link list from cache when possible.
func (c *CachedCardReader) ListLinks(ctx context.Context, cardID uuid.UUID) ([]*entity.Link, error) {
	var links []*entity.Link
	if c.get(ctx, linksKey(cardID), &links) {
		return links, nil
	}

	found, err := c.next.ListLinks(ctx, cardID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, linksKey(cardID), found)

	return found, nil
}

// Invalidate drops the cached card and its links.
func (c *CachedCardReader) Invalidate(ctx context.Context, card *entity.Card) error {
	if c.rdb == nil || card == nil {
		return nil
	}

	if err := c.rdb.Del(ctx, slugKey(card.Slug), linksKey(card.ID)).Err(); err != nil {
		return errors.Wrap(err, "invalidate card cache")
	}

	return nil
}

func (c *CachedCardReader) get(ctx context.Context, key string, out any) bool {
	if c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Card cache read failed, falling back", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.WarnContext(ctx, "Dropping undecodable card cache entry", slog.String("key", key), slog.Any("error", err))
		_ = c.rdb.Del(ctx, key).Err()

		return false
	}

	return true
}

func (c *CachedCardReader) set(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "Card cache encode failed", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Card cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// NoopCardCache is used when Redis is disabled.
type NoopCardCache struct{}

// Invalidate does nothing.
func (NoopCardCache) Invalidate(context.Context, *entity.Card) error {
	return nil
}
