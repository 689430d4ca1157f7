package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"tarjeta/config"
	"tarjeta/internal/delivery/api/response"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/errors"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	rateLimitCode         = "RATE_LIMITED"
	defaultRequestsPerMin = 120
	defaultBurst          = 20
	limiterCleanup        = 5 * time.Minute
	limiterEntryTTL       = 10 * time.Minute
)

// RateLimiterParams holds dependencies for the rate limiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// RateLimiter limits public endpoints per client IP. It uses Redis when
// available and an in-process token bucket otherwise.
type RateLimiter struct {
	enabled  bool
	failOpen bool
	limit    redis_rate.Limit
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	logger   *slog.Logger
}

// NewRateLimiter builds the limiter from config.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil {
		cfg = &config.RateLimitConfig{}
	}

	perMin := cfg.RequestsPerMinute
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	rl := &RateLimiter{
		enabled:  cfg.Enabled,
		failOpen: cfg.FailOpen,
		limit:    redis_rate.Limit{Rate: perMin, Burst: burst, Period: time.Minute},
		fallback: newLocalLimiter(),
		logger:   params.Logger,
	}
	if params.Redis != nil {
		rl.limiter = redis_rate.NewLimiter(params.Redis)
	}

	if params.Lc != nil {
		ctx, cancel := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go rl.fallback.cleanup(ctx)

				return nil
			},
			OnStop: func(context.Context) error {
				cancel()

				return nil
			},
		})
	}

	return rl
}

// Middleware rejects clients over the limit with 429.
func (rl *RateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		key := KeyByIP(c)
		res, err := rl.allow(c.Request().Context(), key)
		if err != nil {
			if rl.failOpen {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).
					Warn("Rate limiter error, failing open", slog.Any("error", err), slog.String("key", key))

				return next(c)
			}

			return response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Servicio no disponible", nil)
		}

		setRateLimitHeaders(c, res, rl.limit)

		if res.Allowed == 0 {
			return writeRateLimitExceeded(c, res)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) (*redis_rate.Result, error) {
	if rl.limiter == nil {
		return rl.fallback.allow(key, rl.limit)
	}

	res, err := rl.limiter.Allow(ctx, key, rl.limit)
	if err != nil {
		rl.logger.Debug("Redis rate limiter unavailable, using local limiter", slog.Any("error", err))

		return rl.fallback.allow(key, rl.limit)
	}

	return res, nil
}

// KeyByIP keys the limit on the client address echo resolves.
func KeyByIP(c echo.Context) string {
	return "ratelimit:ip:" + c.RealIP()
}

func setRateLimitHeaders(c echo.Context, res *redis_rate.Result, limit redis_rate.Limit) {
	h := c.Response().Header()

	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
	h.Set("RateLimit-Policy", fmt.Sprintf("%d;w=%d", limit.Rate, int(limit.Period.Seconds())))
}

func writeRateLimitExceeded(c echo.Context, res *redis_rate.Result) error {
	retryAfter := max(int(res.RetryAfter.Seconds()), 1)
	c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

	return response.Error(c, http.StatusTooManyRequests, rateLimitCode,
		fmt.Sprintf("Demasiadas solicitudes, intenta de nuevo en %d segundos", retryAfter), nil)
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

type localLimiter struct {
	limiters sync.Map
	now      func() time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{now: time.Now}
}

func (l *localLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evict(l.now().Add(-limiterEntryTTL))
		}
	}
}

func (l *localLimiter) evict(cutoff time.Time) {
	l.limiters.Range(func(key, value any) bool {
		entry, ok := value.(*limiterEntry)
		if !ok {
			l.limiters.Delete(key)

			return true
		}
		entry.mu.Lock()
		stale := entry.lastAccess.Before(cutoff)
		entry.mu.Unlock()
		if stale {
			l.limiters.Delete(key)
		}

		return true
	})
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	perSecond := float64(limit.Rate) / limit.Period.Seconds()
	now := l.now()

	value, _ := l.limiters.LoadOrStore(key, &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(perSecond), limit.Burst),
		lastAccess: now,
	})
	entry, ok := value.(*limiterEntry)
	if !ok {
		return nil, errors.New("invalid limiter entry type")
	}

	entry.mu.Lock()
	entry.lastAccess = now
	entry.mu.Unlock()

	interval := time.Duration(float64(time.Second) / perSecond)
	res := &redis_rate.Result{
		Limit:      limit,
		Remaining:  max(int(entry.limiter.TokensAt(now)), 0),
		ResetAfter: interval,
		RetryAfter: -1,
	}
	if entry.limiter.AllowN(now, 1) {
		res.Allowed = 1
		res.Remaining = max(res.Remaining-1, 0)
	} else {
		res.RetryAfter = interval
	}

	return res, nil
}
