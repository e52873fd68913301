package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mtorfit/evolution-api/internal/api/middleware"
)

// callerIdentity is the request-scoped identity the Auth middleware binds to
// the echo context. It lives only for the duration of the request.
type callerIdentity struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing role means the middleware never ran for this route, so reject with
// 401 rather than proceeding unauthenticated.
func ctxIdentity(c echo.Context) (callerIdentity, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return callerIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get(middleware.CtxUserID).(string)
	name, _ := c.Get(middleware.CtxName).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)

	return callerIdentity{UserID: id, Name: name, Email: email, Role: role}, nil
}
