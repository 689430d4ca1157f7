package handler

import (
	"net/http"
	"testing"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	usecasemocks "tarjeta/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLinkHandler_UpdateLink(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	linkID := uuid.New()

	tests := []struct {
		name       string
		id         string
		body       string
		setup      func(m *usecasemocks.MockLinkUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "updated",
			id:   linkID.String(),
			body: `{"title":"Web","url":"example.com","position":2}`,
			setup: func(m *usecasemocks.MockLinkUsecase) {
				m.EXPECT().UpdateLink(mock.Anything, userID, linkID, mock.Anything).
					Return(&entity.Link{ID: linkID, Title: "Web", URL: "example.com", Position: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed id",
			id:         "42",
			body:       `{"title":"Web","url":"example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "negative position",
			id:         linkID.String(),
			body:       `{"title":"Web","url":"example.com","position":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "someone else's link",
			id:   linkID.String(),
			body: `{"title":"Web","url":"example.com"}`,
			setup: func(m *usecasemocks.MockLinkUsecase) {
				m.EXPECT().UpdateLink(mock.Anything, userID, linkID, mock.Anything).Return(nil, domainerrors.ErrLinkForbidden)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "LINK_FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecasemocks.NewMockLinkUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewLinkHandler(LinkHandlerParams{LinkUC: uc, Logger: discardLogger()})

			rec := serve(t, h.UpdateLink, testRequest{
				method: http.MethodPut,
				target: "/api/v1/cards/me/links/" + tt.id,
				body:   tt.body,
				params: map[string]string{"id": tt.id},
				userID: userID,
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestLinkHandler_ListCreateDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	linkID := uuid.New()
	uc := usecasemocks.NewMockLinkUsecase(t)
	uc.EXPECT().ListMyLinks(mock.Anything, userID).Return([]*entity.Link{
		{ID: uuid.New(), Title: "A", Position: 0},
		{ID: uuid.New(), Title: "B", Position: 1},
	}, nil)
	uc.EXPECT().CreateLink(mock.Anything, userID, mock.Anything).Return(&entity.Link{ID: linkID, Title: "C"}, nil)
	uc.EXPECT().DeleteLink(mock.Anything, userID, linkID).Return(nil)
	h := NewLinkHandler(LinkHandlerParams{LinkUC: uc, Logger: discardLogger()})

	rec := serve(t, h.ListLinks, testRequest{method: http.MethodGet, target: "/api/v1/cards/me/links", userID: userID})
	require.Equal(t, http.StatusOK, rec.Code)
	links := decodeData[[]LinkResponse](t, rec)
	require.Len(t, links, 2)
	assert.Equal(t, "A", links[0].Title)

	rec = serve(t, h.CreateLink, testRequest{
		method: http.MethodPost,
		target: "/api/v1/cards/me/links",
		body:   `{"title":"C","url":"c.example"}`,
		userID: userID,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, h.DeleteLink, testRequest{
		method: http.MethodDelete,
		target: "/api/v1/cards/me/links/" + linkID.String(),
		params: map[string]string{"id": linkID.String()},
		userID: userID,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
