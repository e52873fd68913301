package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mtorfit/evolution-api/internal/api"
	"github.com/mtorfit/evolution-api/internal/api/handler"
	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, name, email, password string, role domain.Role) (*ports.AuthResult, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*ports.AuthResult, error) {
	return s.registerFn(ctx, name, email, password, role)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func post(e *echo.Echo, path, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "ana@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{
				AccessToken:  "access123",
				RefreshToken: "refresh123",
				User:         &domain.User{Name: "Ana", Email: email, Role: domain.RoleClient, PasswordHash: "bcrypt-hash"},
			}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/login", `{"email":"ana@x.com","password":"secret1"}`, h.Login)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "access123" || resp["refresh_token"] != "refresh123" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "ana@x.com" || user["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The hash must never be serialized.
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
	if strings.Contains(rec.Body.String(), "bcrypt-hash") {
		t.Fatalf("password hash leaked in response body")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/login", `{"email":"ana@x.com","password":"wrong"}`, h.Login)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "incorrect email or password") {
		t.Fatalf("expected generic credential message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/login", `{"email":"not-an-email","password":"x"}`, h.Login)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (*ports.AuthResult, error) {
			if name != "Ana" || role != domain.RoleClient {
				t.Fatalf("unexpected args: %s %s", name, role)
			}
			return &ports.AuthResult{
				AccessToken:  "access123",
				RefreshToken: "refresh123",
				User:         &domain.User{Name: name, Email: email, Role: role},
			}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/register", `{"name":"Ana","email":"ana@x.com","password":"secret1","role":"client"}`, h.Register)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Register_EmailInUse(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailInUse
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/register", `{"name":"Ana","email":"ana@x.com","password":"secret1","role":"client"}`, h.Register)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_BadRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/register", `{"name":"Ana","email":"ana@x.com","password":"secret1","role":"owner"}`, h.Register)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := post(e, "/auth/refresh", `{"refresh_token":"expired-or-forged"}`, h.Refresh)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "session invalid") {
		t.Fatalf("unexpected message: %s", rec.Body.String())
	}
}
