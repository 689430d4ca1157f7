package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"tarjeta/internal/delivery/api/response"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/delivery/web"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const qrCacheControl = "public, max-age=3600"

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	CardViewUC usecase.CardViewUsecase
	Logger     *slog.Logger
}

// PublicHandler serves the unauthenticated card endpoints.
type PublicHandler struct {
	cardViewUC usecase.CardViewUsecase
	logger     *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		cardViewUC: params.CardViewUC,
		logger:     params.Logger,
	}
}

// RenderHome serves the landing page the not-found page links back to.
func (h *PublicHandler) RenderHome(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageHome, map[string]string{"Hook": usecase.HookHome})
}

// RenderCard serves the HTML card page. Unknown slugs get the not-found page.
func (h *PublicHandler) RenderCard(c echo.Context) error {
	view, err := h.cardViewUC.GetCardView(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if hasCode(err, domainerrors.ErrCardNotFound) {
			return c.Render(http.StatusNotFound, web.PageNotFound, usecase.NewNotFoundView())
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to render card page", slog.String("slug", c.Param("slug")), slog.Any("error", err))

		return renderErrorPage(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
	}

	return c.Render(http.StatusOK, web.PageCard, view)
}

// RenderViewer serves the HTML viewer for one piece of card content.
// A silent no-op sends the visitor back to the card.
func (h *PublicHandler) RenderViewer(c echo.Context) error {
	slug := c.Param("slug")

	input, ok := openContentInput(c)
	if !ok {
		return renderErrorPage(c, http.StatusBadRequest, domainerrors.ErrInvalidContent.Message())
	}

	surface, err := h.cardViewUC.OpenContent(c.Request().Context(), slug, input)
	if err != nil {
		if hasCode(err, domainerrors.ErrCardNotFound) {
			return c.Render(http.StatusNotFound, web.PageNotFound, usecase.NewNotFoundView())
		}
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
			return renderErrorPage(c, appErr.HTTPCode(), appErr.Message())
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to render content viewer", slog.String("slug", slug), slog.Any("error", err))

		return renderErrorPage(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
	}
	if surface == nil {
		return c.Redirect(http.StatusSeeOther, usecase.CardPath(slug))
	}

	return c.Render(http.StatusOK, web.PageViewer, usecase.NewViewerPage(slug, *surface))
}

// GetCard returns the aggregated card view as JSON.
func (h *PublicHandler) GetCard(c echo.Context) error {
	view, err := h.cardViewUC.GetCardView(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if hasCode(err, domainerrors.ErrCardNotFound) {
			return response.Error(c, http.StatusNotFound, domainerrors.ErrCardNotFound.ErrorCode(),
				domainerrors.ErrCardNotFound.Message(), usecase.NewNotFoundView())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DownloadVCard serves the card as a .vcf attachment.
func (h *PublicHandler) DownloadVCard(c echo.Context) error {
	file, err := h.cardViewUC.ExportVCard(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))

	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}

// GetQRCode serves a PNG QR code of the card's public URL.
func (h *PublicHandler) GetQRCode(c echo.Context) error {
	png, err := h.cardViewUC.GetQRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", qrCacheControl)

	return c.Blob(http.StatusOK, "image/png", png)
}

// OpenViewer resolves how a piece of card content should be shown to this client.
// A silent no-op answers 204.
func (h *PublicHandler) OpenViewer(c echo.Context) error {
	input, ok := openContentInput(c)
	if !ok {
		return response.InvalidID(c)
	}

	surface, err := h.cardViewUC.OpenContent(c.Request().Context(), c.Param("slug"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if surface == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, surface)
}

// openContentInput reads the content selector and optional link id from the query.
func openContentInput(c echo.Context) (*usecase.OpenContentInput, bool) {
	input := &usecase.OpenContentInput{
		Content:   usecase.ContentName(c.QueryParam("content")),
		UserAgent: c.Request().UserAgent(),
	}

	if raw := c.QueryParam("link"); raw != "" {
		linkID, err := uuid.Parse(raw)
		if err != nil {
			return nil, false
		}
		input.LinkID = &linkID
	}

	return input, true
}

func renderErrorPage(c echo.Context, status int, message string) error {
	return c.Render(status, web.PageError, map[string]string{"Message": message})
}
