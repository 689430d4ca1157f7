package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestHandleAppError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "plain app error",
			err:        domainerrors.ErrLinkForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   "LINK_FORBIDDEN",
		},
		{
			name:        "details kept for 4xx",
			err:         domainerrors.ErrDocumentTooLarge.WithDetails("máximo 5.00MB"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "DOCUMENT_TOO_LARGE",
			wantDetails: "máximo 5.00MB",
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrCardNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "CARD_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newContext()
			require.NoError(t, HandleAppError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	boom := errors.New("boom")

	err := HandleAppError(c, boom)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rec.Body.String())
}

func TestError_DropsDetailsOnServerErrors(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	require.NoError(t, Error(c, http.StatusInternalServerError, "X", "y", "secret"))
	assert.NotContains(t, rec.Body.String(), "secret")
}
