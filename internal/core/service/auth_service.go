package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

// AuthService implements login, registration and token refresh. It is the
// only component that mints tokens.
type AuthService struct {
	repo     ports.AuthRepository
	codec    ports.TokenCodec
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService wires the credential store, token codec and an optional
// login throttle (nil disables throttling).
func NewAuthService(repo ports.AuthRepository, codec ports.TokenCodec, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, throttle: throttle, logger: logger}
}

// Login verifies the email/password pair and mints a fresh token pair.
// Unknown email and wrong password both surface as ErrInvalidCredentials so
// the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			// Redis being down must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Msg("login throttle record failed")
			}
		}
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	return s.mintTokens(user)
}

// Register creates a new user and treats it as already authenticated,
// returning a token pair without a separate login step. The existence
// pre-check is a fast path; the store's unique index is the authority on
// duplicate emails, so a concurrent race still resolves to ErrEmailInUse
// at write time.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return s.mintTokens(created)
}

// Refresh exchanges a valid refresh token for a fresh access/refresh pair
// (rotation). The old refresh token is not tracked server-side; it simply
// ages out at its natural expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	email, err := s.codec.Verify(refreshToken, ports.PurposeRefresh)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Account deleted between issuance and refresh.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.mintTokens(user)
}

func (s *AuthService) mintTokens(user *domain.User) (*ports.AuthResult, error) {
	access, err := s.codec.Issue(user.Email, ports.PurposeAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(user.Email, ports.PurposeRefresh)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// normalizeEmail lowercases the address so lookups and the unique index
// agree on case-insensitivity.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
