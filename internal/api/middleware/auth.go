package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxName   = "name"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth is the access-control gate. It extracts the bearer token, verifies it
// as an access token, then re-resolves the account so a role change takes
// effect on the very next request instead of lingering until the token
// expires. On success the caller identity is injected into the echo context.
func Auth(codec ports.TokenCodec, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			email, err := codec.Verify(parts[1], ports.PurposeAccess)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
				}
				return err
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxName, user.Name)
			c.Set(CtxEmail, user.Email)
			c.Set(CtxRole, string(user.Role))

			return next(c)
		}
	}
}
