package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mtorfit/evolution-api/internal/core/domain"
)

// RBAC admits the request only when the resolved role is in the allowed set.
// It runs after Auth, so an empty role means the gate was bypassed and the
// request is treated as unauthenticated, not forbidden.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
