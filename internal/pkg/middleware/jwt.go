package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/tiffinhub/internal/pkg/jwt"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/internal/utils"
)

// Echo context keys set by JWTAuthMiddleware
const (
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeyServiceType = "service_type"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.UserID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyUserRole, claims.Role)
			c.Set(ContextKeyServiceType, claims.ServiceType)

			return next(c)
		}
	}
}

// UserID returns the authenticated user id, empty outside JWTAuthMiddleware
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextKeyUserID).(string)
	return id
}

// ServiceType returns the authenticated user's service type
func ServiceType(c echo.Context) models.ServiceType {
	st, _ := c.Get(ContextKeyServiceType).(models.ServiceType)
	return st
}
