package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/delivery/api/validator"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/delivery/web"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	return e
}

type testRequest struct {
	method string
	target string
	body   string
	params map[string]string
	userID uuid.UUID
}

func serve(t *testing.T, h echo.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho(t)

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for k, v := range tr.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if tr.userID != uuid.Nil {
		deliverycontext.SetUser(c, tr.userID, []string{"user"})
	}

	require.NoError(t, h(c))

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}
