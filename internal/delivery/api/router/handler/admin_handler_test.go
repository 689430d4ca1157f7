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
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	uc := usecasemocks.NewMockAdminUsecase(t)
	uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "$2a$secret", Role: entity.RoleUser, Plan: entity.PlanTrial, TrialEndsAt: &past, IsActive: true},
	}, nil)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: uc, Logger: discardLogger()})
	h.now = func() time.Time { return now }

	rec := serve(t, h.ListUsers, testRequest{method: http.MethodGet, target: "/api/v1/admin/users"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$secret")
	users := decodeData[[]UserResponse](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, entity.PlanTrial, users[0].Plan)
	assert.Equal(t, entity.PlanExpired, users[0].EffectivePlan)
}

func TestAdminHandler_UserMutations(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		call       func(h *AdminHandler) func(c echo.Context) error
		setup      func(m *usecasemocks.MockAdminUsecase)
		id         string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name: "toggle active",
			call: func(h *AdminHandler) func(c echo.Context) error { return h.ToggleActive },
			setup: func(m *usecasemocks.MockAdminUsecase) {
				m.EXPECT().ToggleActive(mock.Anything, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)
			},
			id:         userID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name: "extend plan unknown user",
			call: func(h *AdminHandler) func(c echo.Context) error { return h.ExtendPlan },
			setup: func(m *usecasemocks.MockAdminUsecase) {
				m.EXPECT().ExtendPlan(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)
			},
			id:         userID.String(),
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name: "regenerate license",
			call: func(h *AdminHandler) func(c echo.Context) error { return h.RegenerateLicense },
			setup: func(m *usecasemocks.MockAdminUsecase) {
				m.EXPECT().RegenerateLicense(mock.Anything, userID).Return(&entity.User{ID: userID, LicenseKey: "new"}, nil)
			},
			id:         userID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name: "reset password too short",
			call: func(h *AdminHandler) func(c echo.Context) error { return h.ResetPassword },
			setup: func(m *usecasemocks.MockAdminUsecase) {
				m.EXPECT().ResetPassword(mock.Anything, userID, "abc").Return(domainerrors.ErrPasswordTooShort)
			},
			id:         userID.String(),
			body:       `{"password":"abc"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "PASSWORD_TOO_SHORT",
		},
		{
			name:       "reset password missing",
			call:       func(h *AdminHandler) func(c echo.Context) error { return h.ResetPassword },
			id:         userID.String(),
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "delete user",
			call: func(h *AdminHandler) func(c echo.Context) error { return h.DeleteUser },
			setup: func(m *usecasemocks.MockAdminUsecase) {
				m.EXPECT().DeleteUser(mock.Anything, userID).Return(nil)
			},
			id:         userID.String(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "malformed id",
			call:       func(h *AdminHandler) func(c echo.Context) error { return h.DeleteUser },
			id:         "x",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecasemocks.NewMockAdminUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewAdminHandler(AdminHandlerParams{AdminUC: uc, Logger: discardLogger()})

			method := http.MethodPost
			if tt.body == "" {
				method = http.MethodDelete
			}
			rec := serve(t, tt.call(h), testRequest{
				method: method,
				target: "/api/v1/admin/users/" + tt.id,
				body:   tt.body,
				params: map[string]string{"id": tt.id},
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestMessageHandler(t *testing.T) {
	t.Parallel()

	msgID := uuid.New()
	uc := usecasemocks.NewMockMessageUsecase(t)
	uc.EXPECT().ListMessages(mock.Anything).Return([]*entity.AdminMessage{{ID: msgID, Title: "Hola", Body: "Bienvenidos"}}, nil)
	uc.EXPECT().CreateMessage(mock.Anything, &usecase.MessageInput{Title: "Aviso", Body: "Mantenimiento"}).
		Return(&entity.AdminMessage{ID: msgID, Title: "Aviso", Body: "Mantenimiento"}, nil)
	uc.EXPECT().DeleteMessage(mock.Anything, msgID).Return(domainerrors.ErrMessageNotFound)
	h := NewMessageHandler(MessageHandlerParams{MessageUC: uc, Logger: discardLogger()})

	rec := serve(t, h.ListMessages, testRequest{method: http.MethodGet, target: "/api/v1/messages", userID: uuid.New()})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]MessageResponse](t, rec), 1)

	rec = serve(t, h.CreateMessage, testRequest{
		method: http.MethodPost,
		target: "/api/v1/admin/messages",
		body:   `{"title":"Aviso","body":"Mantenimiento"}`,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, h.CreateMessage, testRequest{method: http.MethodPost, target: "/api/v1/admin/messages", body: `{"title":"Aviso"}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h.DeleteMessage, testRequest{
		method: http.MethodDelete,
		target: "/api/v1/admin/messages/" + msgID.String(),
		params: map[string]string{"id": msgID.String()},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
