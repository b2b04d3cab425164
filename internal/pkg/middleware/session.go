package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/riderlink/riderlink/internal/pkg/jwt"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// Context keys populated by SessionAuth.
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// SessionAuth authenticates requests from the session cookie, with an
// Authorization bearer fallback for non-browser clients. On success the
// user id and role are stored in the request context.
func SessionAuth(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ""

			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				tokenString = cookie.Value
			} else if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || parts[0] != "Bearer" {
					return utils.UnauthorizedResponse(c, "Invalid authorization format")
				}
				tokenString = parts[1]
			}

			if tokenString == "" {
				return utils.UnauthorizedResponse(c, "Not authenticated")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, cfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired session")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRoles rejects authenticated callers whose role is not in the
// allow-list. Must run after SessionAuth.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(models.Role)
			if !ok {
				return utils.ForbiddenResponse(c, "Role not found in session")
			}
			if _, ok := allowed[role]; !ok {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id, or 0 when the
// request is unauthenticated.
func UserIDFromContext(c echo.Context) int64 {
	id, _ := c.Get(ContextUserID).(int64)
	return id
}

// RoleFromContext returns the authenticated user's role.
func RoleFromContext(c echo.Context) models.Role {
	role, _ := c.Get(ContextRole).(models.Role)
	return role
}
