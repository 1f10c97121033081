// Package middleware contains echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/delivery/http/response"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Context keys set by Authenticate.
const (
	KeySubject = "subject"
	KeyRoles   = "roles"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc, logger: params.Logger}
}

// Authenticate validates the bearer access token and stores its subject and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("expected a Bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			m.logger.Debug("Rejected access token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrTokenInvalid)
		}

		c.Set(KeySubject, claims.Subject)
		c.Set(KeyRoles, claims.Roles)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithOperator(c.Request().Context(), claims.Subject, m.logger),
		))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the operator has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(KeyRoles).([]string)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("role information missing"))
			}

			if !slices.Contains(roles, requiredRole) {
				return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("requires the "+requiredRole+" role"))
			}

			return next(c)
		}
	}
}
