package ports

import (
	"context"

	"github.com/mtorfit/evolution-api/internal/core/domain"
)

// AuthResult carries the token pair minted on a successful login, register
// or refresh, plus the sanitized user record the frontend renders.
type AuthResult struct {
	AccessToken  string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         *domain.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string, role domain.Role) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// LoginThrottle bounds failed login attempts per account. A nil throttle
// disables the check.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
