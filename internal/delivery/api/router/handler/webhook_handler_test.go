package handler

import (
	"net/http"
	"testing"
	"time"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	usecasemocks "tarjeta/internal/mocks/usecase"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWebhookHandler_HandlePayment(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	expires := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		body        string
		setup       func(m *usecasemocks.MockPlanUsecase)
		wantStatus  int
		wantApplied bool
	}{
		{
			name: "approved payment",
			body: `{"user_id":"` + userID.String() + `","status":"approved"}`,
			setup: func(m *usecasemocks.MockPlanUsecase) {
				m.EXPECT().ApplyPayment(mock.Anything, &usecase.PaymentNotification{UserID: userID, Status: "approved"}).
					Return(&usecase.PlanChange{Applied: true, UserID: userID, Plan: entity.PlanPaid, ExpiresAt: &expires}, nil)
			},
			wantStatus:  http.StatusOK,
			wantApplied: true,
		},
		{
			name: "pending payment is acknowledged",
			body: `{"user_id":"` + userID.String() + `","status":"pending"}`,
			setup: func(m *usecasemocks.MockPlanUsecase) {
				m.EXPECT().ApplyPayment(mock.Anything, mock.Anything).Return(&usecase.PlanChange{UserID: userID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "user id is not a uuid",
			body:       `{"user_id":"abc","status":"approved"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"user_id":"` + userID.String() + `","status":"approved"}`,
			setup: func(m *usecasemocks.MockPlanUsecase) {
				m.EXPECT().ApplyPayment(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecasemocks.NewMockPlanUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewWebhookHandler(WebhookHandlerParams{PlanUC: uc, Logger: discardLogger()})

			rec := serve(t, h.HandlePayment, testRequest{
				method: http.MethodPost,
				target: "/api/v1/webhooks/payments",
				body:   tt.body,
			})

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantApplied, decodeData[usecase.PlanChange](t, rec).Applied)
			}
		})
	}
}
