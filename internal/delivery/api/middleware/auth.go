package middleware

import (
	"log/slog"
	"strings"

	"tarjeta/internal/delivery/api/response"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService   service.TokenService
	UserRepository repository.UserRepository
	Logger         *slog.Logger
}

// AuthMiddleware validates bearer tokens and enforces roles.
type AuthMiddleware struct {
	tokens service.TokenService
	users  repository.UserRepository
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: params.TokenService,
		users:  params.UserRepository,
		logger: params.Logger,
	}
}

// Authenticate rejects requests without a valid access token or whose account
// is disabled, and stores the caller's identity in the echo.Context. Roles come
// from the stored user so a demotion takes effect before the token expires.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c)
		}

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		claims, err := m.tokens.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			logger.Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c)
		}

		user, err := m.users.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c)
			}
			logger.Error("Failed to load authenticated user", slog.String("user_id", claims.UserID.String()), slog.Any("error", err))

			return response.InternalServerError(c)
		}
		if !user.IsActive {
			return response.HandleAppError(c, domainerrors.ErrAccountDisabled)
		}

		roles := entity.Roles{entity.RoleUser}
		if user.IsAdmin() {
			roles = append(roles, entity.RoleAdmin)
		}
		deliverycontext.SetUser(c, user.ID, roles.ToStrings())

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !roles.Contains(role) {
				return response.Forbidden(c)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := deliverycontext.GetRoles(c)
	if !ok {
		return nil, false
	}

	return entity.RolesFromStrings(roles), true
}
