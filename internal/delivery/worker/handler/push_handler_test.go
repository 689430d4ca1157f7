package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tarjeta/config"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/infra/pubsub"
	mockUsecase "tarjeta/internal/mocks/usecase"
	"tarjeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event *service.DomainEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Parallel()

	deleted := &service.DomainEvent{
		RequestID:  "req-from-event",
		Type:       service.EventCardDeleted,
		SubjectID:  "card-1",
		Attributes: map[string]string{"slug": "ana"},
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		verify     func(*http.Request) error
		setup      func(m *mockUsecase.MockEventUsecase)
		wantStatus int
	}{
		{
			name: "handled event is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, deleted, map[string]string{"request_id": "req-from-attr"}) },
			setup: func(m *mockUsecase.MockEventUsecase) {
				m.EXPECT().Handle(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attr"
				}), mock.MatchedBy(func(e *service.DomainEvent) bool {
					return e.Type == service.EventCardDeleted && e.Attributes["slug"] == "ana"
				})).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "request id falls back to the event",
			body: func(t *testing.T) string { return pushBody(t, deleted, nil) },
			setup: func(m *mockUsecase.MockEventUsecase) {
				m.EXPECT().Handle(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-event"
				}), mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, deleted, nil) },
			setup: func(m *mockUsecase.MockEventUsecase) {
				m.EXPECT().Handle(mock.Anything, mock.Anything).Return(usecase.NewRetryableError(errors.New("redis down"))).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "permanent failure is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, deleted, nil) },
			setup: func(m *mockUsecase.MockEventUsecase) {
				m.EXPECT().Handle(mock.Anything, mock.Anything).Return(errors.New("bad slug")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			body:       func(*testing.T) string { return "{" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "event without type",
			body:       func(t *testing.T) string { return pushBody(t, &service.DomainEvent{SubjectID: "x"}, nil) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rejected push token",
			body:       func(t *testing.T) string { return pushBody(t, deleted, nil) },
			verify:     func(*http.Request) error { return errors.New("bad token") },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			events := mockUsecase.NewMockEventUsecase(t)
			if tt.setup != nil {
				tt.setup(events)
			}
			h := NewPushHandler(PushHandlerParams{Config: &config.Config{}, Logger: discardLogger(), Events: events})
			h.verify = tt.verify

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(tt.body(t)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		env        string
		provider   string
		wantVerify bool
	}{
		{name: "google in production", env: "production", provider: "google", wantVerify: true},
		{name: "google in develop", env: "develop", provider: "google"},
		{name: "local in production", env: "production", provider: "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger()})
			assert.Equal(t, tt.wantVerify, h.verify != nil)
		})
	}
}

func TestPushHandler_LocalPublisherRoundTrip(t *testing.T) {
	t.Parallel()

	received := make(chan *service.DomainEvent, 1)
	events := mockUsecase.NewMockEventUsecase(t)
	events.EXPECT().Handle(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.DomainEvent) { received <- event }).
		Return(nil).Once()

	h := NewPushHandler(PushHandlerParams{Config: &config.Config{}, Logger: discardLogger(), Events: events})
	e := echo.New()
	e.POST("/push", h.HandlePush)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+"/push", discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), &service.DomainEvent{
		Type:       service.EventMessageBroadcast,
		SubjectID:  "msg-1",
		Attributes: map[string]string{"title": "Hola"},
	}))

	got := <-received
	assert.Equal(t, service.EventMessageBroadcast, got.Type)
	assert.Equal(t, "msg-1", got.SubjectID)
	assert.Equal(t, "Hola", got.Attributes["title"])
}
