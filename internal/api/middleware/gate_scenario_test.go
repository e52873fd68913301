package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/service"
)

// End-to-end gate behavior: a freshly registered client can call
// client-role routes but is turned away from admin routes, and the admitted
// request sees its own email in the request context.
func TestGate_RegisterLoginAuthorize(t *testing.T) {
	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	codec := service.NewJWTCodec("secret", 15*time.Minute, time.Hour)
	auth := service.NewAuthService(repo, codec, nil, zerolog.Nop())

	if _, err := auth.Register(context.Background(), "Ana", "ana@x.com", "secret1", domain.RoleClient); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	login, err := auth.Login(context.Background(), "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	e := echo.New()
	gate := Auth(codec, repo)

	run := func(required domain.Role, next echo.HandlerFunc) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+login.AccessToken)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := gate(RBAC(required)(next))(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec
	}

	rec := run(domain.RoleAdmin, func(c echo.Context) error {
		t.Fatalf("client admitted to admin route")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin route, got %d", rec.Code)
	}

	rec = run(domain.RoleClient, func(c echo.Context) error {
		if c.Get(CtxEmail) != "ana@x.com" {
			t.Fatalf("context email %v does not match token subject", c.Get(CtxEmail))
		}
		return c.NoContent(http.StatusOK)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for client route, got %d", rec.Code)
	}
}
