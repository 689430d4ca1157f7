package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	c := newEchoContext()
	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "abc")
	assert.Equal(t, "abc", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	scoped := slog.Default().With("k", "v")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestUser(t *testing.T) {
	t.Parallel()

	c := newEchoContext()
	_, ok := GetUserID(c)
	assert.False(t, ok)

	id := uuid.New()
	SetUser(c, id, []string{"admin"})

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"admin"}, roles)
}
