package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tarjeta/config"
	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/delivery/api/validator"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	repomocks "tarjeta/internal/mocks/repository"
	servicemocks "tarjeta/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: errors.Wrap(domainerrors.ErrCardNotFound, "lookup"), wantStatus: http.StatusNotFound, wantCode: "CARD_NOT_FOUND"},
		{name: "validation error", err: &validator.ValidationError{Fields: []validator.FieldError{{Field: "name", Rule: "required"}}}, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "echo not found", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "echo body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "REQUEST_TOO_LARGE"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	NewErrorMiddleware(discardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	active := &entity.User{ID: userID, Role: entity.RoleUser, IsActive: true}

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *servicemocks.MockTokenService, users *repomocks.MockUserRepository)
		wantStatus int
		wantCode   string
		wantRoles  []string
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *servicemocks.MockTokenService, users *repomocks.MockUserRepository) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
				users.EXPECT().FindByID(mock.Anything, userID).Return(active, nil)
			},
			wantStatus: http.StatusOK,
			wantRoles:  []string{"user"},
		},
		{
			name:   "roles come from the stored user",
			header: "Bearer good",
			setup: func(tokens *servicemocks.MockTokenService, users *repomocks.MockUserRepository) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user", "admin"}}, nil)
				users.EXPECT().FindByID(mock.Anything, userID).Return(active, nil)
			},
			wantStatus: http.StatusOK,
			wantRoles:  []string{"user"},
		},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *servicemocks.MockTokenService, _ *repomocks.MockUserRepository) {
				tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "disabled account",
			header: "Bearer good",
			setup: func(tokens *servicemocks.MockTokenService, users *repomocks.MockUserRepository) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
				users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.ErrAccountDisabled.ErrorCode(),
		},
		{
			name:   "deleted account",
			header: "Bearer good",
			setup: func(tokens *servicemocks.MockTokenService, users *repomocks.MockUserRepository) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
				users.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "user lookup fails",
			header: "Bearer good",
			setup: func(tokens *servicemocks.MockTokenService, users *repomocks.MockUserRepository) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
				users.EXPECT().FindByID(mock.Anything, userID).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := servicemocks.NewMockTokenService(t)
			users := repomocks.NewMockUserRepository(t)
			if tt.setup != nil {
				tt.setup(tokens, users)
			}
			mw := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, UserRepository: users, Logger: discardLogger()})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw.Authenticate(func(c echo.Context) error {
				id, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, id)

				roles, ok := GetRoles(c)
				assert.True(t, ok)
				assert.Equal(t, entity.RolesFromStrings(tt.wantRoles), roles)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		roles      []string
		wantStatus int
	}{
		{name: "admin passes", roles: []string{"user", "admin"}, wantStatus: http.StatusOK},
		{name: "user is forbidden", roles: []string{"user"}, wantStatus: http.StatusForbidden},
		{name: "no roles", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mw := NewAuthMiddleware(AuthMiddlewareParams{Logger: discardLogger()})
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.roles != nil {
				deliverycontext.SetUser(c, uuid.New(), tt.roles)
			}

			err := mw.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWebhookMiddleware_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{name: "matching secret", secret: "s3cret", header: "s3cret", wantStatus: http.StatusOK},
		{name: "wrong secret", secret: "s3cret", header: "nope", wantStatus: http.StatusUnauthorized},
		{name: "missing header", secret: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "unconfigured secret rejects all", header: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Webhook: &config.WebhookConfig{Secret: tt.secret}}
			mw := NewWebhookMiddleware(cfg, discardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderWebhookSecret, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw.Verify(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, domainerrors.ErrInvalidWebhookSecret.ErrorCode(), decodeError(t, rec).Code)
			}
		})
	}
}

func newTestRateLimiter(rdb *redis.Client, enabled bool, perMinute, burst int) *RateLimiter {
	return NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{
			Enabled:           enabled,
			RequestsPerMinute: perMinute,
			Burst:             burst,
			FailOpen:          true,
		}},
		Logger: discardLogger(),
		Redis:  rdb,
	})
}

func serveRateLimited(t *testing.T, rl *RateLimiter, ip string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/t/ana", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := rl.Middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec
}

func TestRateLimiter_LocalLimiter(t *testing.T) {
	t.Parallel()

	rl := newTestRateLimiter(nil, true, 1, 2)

	assert.Equal(t, http.StatusOK, serveRateLimited(t, rl, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serveRateLimited(t, rl, "10.0.0.1").Code)

	rec := serveRateLimited(t, rl, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, rateLimitCode, decodeError(t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	// Another client has its own bucket.
	assert.Equal(t, http.StatusOK, serveRateLimited(t, rl, "10.0.0.2").Code)
}

func TestRateLimiter_FallsBackWhenRedisFails(t *testing.T) {
	t.Parallel()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	rl := newTestRateLimiter(rdb, true, 1, 1)

	assert.Equal(t, http.StatusOK, serveRateLimited(t, rl, "10.0.0.3").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveRateLimited(t, rl, "10.0.0.3").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	rl := newTestRateLimiter(nil, false, 1, 1)
	for range 5 {
		rec := serveRateLimited(t, rl, "10.0.0.4")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestLocalLimiter_Evict(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	l := newLocalLimiter()
	l.now = func() time.Time { return now }

	rl := newTestRateLimiter(nil, true, 60, 5)
	_, err := l.allow("old", rl.limit)
	require.NoError(t, err)

	now = now.Add(limiterEntryTTL + time.Minute)
	_, err = l.allow("fresh", rl.limit)
	require.NoError(t, err)

	l.evict(now.Add(-limiterEntryTTL))

	_, oldLoaded := l.limiters.Load("old")
	_, freshLoaded := l.limiters.Load("fresh")
	assert.False(t, oldLoaded)
	assert.True(t, freshLoaded)
}

func TestTracing_SetsSpanContextAndKeepsStatus(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/public/cards/missing", nil), rec)

	mw := Tracing(noop.NewTracerProvider().Tracer("test"))
	err := mw(func(c echo.Context) error {
		return domainerrors.ErrCardNotFound
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "CARD_NOT_FOUND"))
}
