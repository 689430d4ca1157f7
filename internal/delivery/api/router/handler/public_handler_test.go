package handler

import (
	"net/http"
	"testing"

	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/viewer"
	"tarjeta/internal/errors"
	usecasemocks "tarjeta/internal/mocks/usecase"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPublicHandler(uc usecase.CardViewUsecase) *PublicHandler {
	return NewPublicHandler(PublicHandlerParams{CardViewUC: uc, Logger: discardLogger()})
}

func TestPublicHandler_RenderCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(m *usecasemocks.MockCardViewUsecase)
		wantStatus int
		wantHook   string
	}{
		{
			name: "renders card",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().GetCardView(mock.Anything, "ana").Return(&usecase.CardView{
					Hook:       usecase.HookCard,
					Slug:       "ana",
					ThemeColor: "#6366f1",
					Profile:    usecase.ProfileBlock{Hook: usecase.HookProfileAvatar, Initials: "A", Name: "Ana", NameHook: usecase.HookName},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantHook:   `data-testid="tarjeta-publica"`,
		},
		{
			name: "unknown slug renders not-found page",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().GetCardView(mock.Anything, "ana").Return(nil, domainerrors.ErrCardNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantHook:   `data-testid="go-home-btn"`,
		},
		{
			name: "failure renders error page",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().GetCardView(mock.Anything, "ana").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantHook:   `data-testid="error-page"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecasemocks.NewMockCardViewUsecase(t)
			tt.setup(uc)

			rec := serve(t, newPublicHandler(uc).RenderCard, testRequest{
				method: http.MethodGet,
				target: "/t/ana",
				params: map[string]string{"slug": "ana"},
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantHook)
		})
	}
}

func TestPublicHandler_RenderHome(t *testing.T) {
	t.Parallel()

	rec := serve(t, newPublicHandler(usecasemocks.NewMockCardViewUsecase(t)).RenderHome, testRequest{
		method: http.MethodGet,
		target: "/",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-testid="home"`)
}

func TestPublicHandler_RenderViewer(t *testing.T) {
	t.Parallel()

	pdf := viewer.PDF("data:application/pdf;base64,JVBERi0=", "Menú").Surface()

	tests := []struct {
		name         string
		target       string
		setup        func(m *usecasemocks.MockCardViewUsecase)
		wantStatus   int
		wantContains []string
		wantLocation string
	}{
		{
			name:   "document opens in a frame",
			target: "/t/ana/view?content=document",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.MatchedBy(func(in *usecase.OpenContentInput) bool {
					return in.Content == usecase.ContentDocument && in.LinkID == nil
				})).Return(&pdf, nil)
			},
			wantStatus: http.StatusOK,
			wantContains: []string{
				`data-testid="content-viewer"`,
				`class="viewer-frame"`,
				`#toolbar=0`,
				`data-testid="viewer-close-btn"`,
				`href="/t/ana"`,
			},
		},
		{
			name:   "external-only website offers a button",
			target: "/t/ana/view?content=website&link=" + uuid.NewString(),
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				surface := viewer.Website("https://shop.example.com", "Tienda", viewer.CapabilityMustOpenExternally).Surface()
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(&surface, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: []string{`data-testid="viewer-action-btn"`, `href="https://shop.example.com"`, `target="_blank"`},
		},
		{
			name:   "silent no-op goes back to the card",
			target: "/t/ana/view?content=whatsapp",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(nil, nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/t/ana",
		},
		{
			name:   "unknown slug renders not-found page",
			target: "/t/ana/view?content=document",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(nil, domainerrors.ErrCardNotFound)
			},
			wantStatus:   http.StatusNotFound,
			wantContains: []string{`data-testid="go-home-btn"`},
		},
		{
			name:   "missing content renders error page",
			target: "/t/ana/view?content=document",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(nil, domainerrors.ErrInvalidContent)
			},
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{`data-testid="error-page"`},
		},
		{
			name:         "malformed link id",
			target:       "/t/ana/view?content=website&link=nope",
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{`data-testid="error-page"`},
		},
		{
			name:   "failure renders error page",
			target: "/t/ana/view?content=document",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(nil, errors.New("api down"))
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: []string{`data-testid="error-page"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecasemocks.NewMockCardViewUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := serve(t, newPublicHandler(uc).RenderViewer, testRequest{
				method: http.MethodGet,
				target: tt.target,
				params: map[string]string{"slug": "ana"},
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, rec.Body.String(), want)
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestPublicHandler_GetCard_NotFoundCarriesRecovery(t *testing.T) {
	t.Parallel()

	uc := usecasemocks.NewMockCardViewUsecase(t)
	uc.EXPECT().GetCardView(mock.Anything, "nadie").Return(nil, domainerrors.ErrCardNotFound)

	rec := serve(t, newPublicHandler(uc).GetCard, testRequest{
		method: http.MethodGet,
		target: "/api/v1/public/cards/nadie",
		params: map[string]string{"slug": "nadie"},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "CARD_NOT_FOUND", info.Code)
	details, ok := info.Details.(map[string]any)
	if assert.True(t, ok) {
		assert.Equal(t, usecase.HookGoHome, details["recovery_hook"])
		assert.Equal(t, "/", details["recovery_url"])
	}
}

func TestPublicHandler_DownloadVCard(t *testing.T) {
	t.Parallel()

	uc := usecasemocks.NewMockCardViewUsecase(t)
	uc.EXPECT().ExportVCard(mock.Anything, "ana").Return(&usecase.VCardFile{
		FileName:    "Ana Pérez.vcf",
		ContentType: "text/vcard; charset=utf-8",
		Data:        []byte("BEGIN:VCARD\r\nEND:VCARD\r\n"),
	}, nil)

	rec := serve(t, newPublicHandler(uc).DownloadVCard, testRequest{
		method: http.MethodGet,
		target: "/api/v1/public/cards/ana/vcard",
		params: map[string]string{"slug": "ana"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/vcard; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment;")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "filename*=utf-8''Ana%20P%C3%A9rez.vcf")
	assert.Equal(t, "BEGIN:VCARD\r\nEND:VCARD\r\n", rec.Body.String())
}

func TestPublicHandler_GetQRCode(t *testing.T) {
	t.Parallel()

	uc := usecasemocks.NewMockCardViewUsecase(t)
	uc.EXPECT().GetQRCode(mock.Anything, "ana").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := serve(t, newPublicHandler(uc).GetQRCode, testRequest{
		method: http.MethodGet,
		target: "/api/v1/public/cards/ana/qr.png",
		params: map[string]string{"slug": "ana"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, qrCacheControl, rec.Header().Get("Cache-Control"))
}

func TestPublicHandler_OpenViewer(t *testing.T) {
	t.Parallel()

	linkID := uuid.New()

	tests := []struct {
		name       string
		target     string
		setup      func(m *usecasemocks.MockCardViewUsecase)
		wantStatus int
	}{
		{
			name:   "website surface",
			target: "/api/v1/public/cards/ana/viewer?content=website&link=" + linkID.String(),
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.MatchedBy(func(in *usecase.OpenContentInput) bool {
					return in.Content == usecase.ContentWebsite && in.LinkID != nil && *in.LinkID == linkID
				})).Return(&viewer.Surface{Kind: viewer.SurfaceFrame, Src: "https://example.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "silent no-op",
			target: "/api/v1/public/cards/ana/viewer?content=whatsapp",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(nil, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "malformed link id",
			target:     "/api/v1/public/cards/ana/viewer?content=website&link=nope",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid content",
			target: "/api/v1/public/cards/ana/viewer?content=fax",
			setup: func(m *usecasemocks.MockCardViewUsecase) {
				m.EXPECT().OpenContent(mock.Anything, "ana", mock.Anything).Return(nil, domainerrors.ErrInvalidContent)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecasemocks.NewMockCardViewUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := serve(t, newPublicHandler(uc).OpenViewer, testRequest{
				method: http.MethodGet,
				target: tt.target,
				params: map[string]string{"slug": "ana"},
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
