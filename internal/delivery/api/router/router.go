// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tarjeta/internal/delivery/api/middleware"
	"tarjeta/internal/delivery/api/router/handler"
	"tarjeta/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PublicHandler     *handler.PublicHandler
	CardHandler       *handler.CardHandler
	LinkHandler       *handler.LinkHandler
	AdminHandler      *handler.AdminHandler
	MessageHandler    *handler.MessageHandler
	WebhookHandler    *handler.WebhookHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
	WebhookMiddleware *middleware.WebhookMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	publicHandler     *handler.PublicHandler
	cardHandler       *handler.CardHandler
	linkHandler       *handler.LinkHandler
	adminHandler      *handler.AdminHandler
	messageHandler    *handler.MessageHandler
	webhookHandler    *handler.WebhookHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	webhookMiddleware *middleware.WebhookMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		publicHandler:     params.PublicHandler,
		cardHandler:       params.CardHandler,
		linkHandler:       params.LinkHandler,
		adminHandler:      params.AdminHandler,
		messageHandler:    params.MessageHandler,
		webhookHandler:    params.WebhookHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimiter:       params.RateLimiter,
		webhookMiddleware: params.WebhookMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public HTML pages
	e.GET("/", r.publicHandler.RenderHome)
	e.GET("/t/:slug", r.publicHandler.RenderCard, r.rateLimiter.Middleware)
	e.GET("/t/:slug/view", r.publicHandler.RenderViewer, r.rateLimiter.Middleware)

	apiV1 := e.Group("/api/v1")

	// Public card API, rate limited per client IP
	publicGroup := apiV1.Group("/public/cards")
	publicGroup.Use(r.rateLimiter.Middleware)
	{
		publicGroup.GET("/:slug", r.publicHandler.GetCard)
		publicGroup.GET("/:slug/vcard", r.publicHandler.DownloadVCard)
		publicGroup.GET("/:slug/qr.png", r.publicHandler.GetQRCode)
		publicGroup.GET("/:slug/viewer", r.publicHandler.OpenViewer)
	}

	// Payment provider callbacks
	webhookGroup := apiV1.Group("/webhooks")
	webhookGroup.Use(r.webhookMiddleware.Verify)
	{
		webhookGroup.POST("/payments", r.webhookHandler.HandlePayment)
	}

	// Owner routes
	cardsGroup := apiV1.Group("/cards/me")
	cardsGroup.Use(r.authMiddleware.Authenticate)
	{
		cardsGroup.GET("", r.cardHandler.GetMyCard)
		cardsGroup.POST("", r.cardHandler.CreateMyCard)
		cardsGroup.PUT("", r.cardHandler.UpdateMyCard)
		cardsGroup.DELETE("", r.cardHandler.DeleteMyCard)
		cardsGroup.POST("/qr", r.cardHandler.GenerateQR)

		cardsGroup.GET("/links", r.linkHandler.ListLinks)
		cardsGroup.POST("/links", r.linkHandler.CreateLink)
		cardsGroup.PUT("/links/:id", r.linkHandler.UpdateLink)
		cardsGroup.DELETE("/links/:id", r.linkHandler.DeleteLink)
	}

	apiV1.GET("/messages", r.messageHandler.ListMessages, r.authMiddleware.Authenticate)

	// Admin routes require authentication and the "admin" role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/toggle-active", r.adminHandler.ToggleActive)
		adminGroup.POST("/users/:id/extend-plan", r.adminHandler.ExtendPlan)
		adminGroup.POST("/users/:id/regenerate-license", r.adminHandler.RegenerateLicense)
		adminGroup.POST("/users/:id/reset-password", r.adminHandler.ResetPassword)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.GET("/messages", r.messageHandler.ListMessages)
		adminGroup.POST("/messages", r.messageHandler.CreateMessage)
		adminGroup.DELETE("/messages/:id", r.messageHandler.DeleteMessage)
	}
}
