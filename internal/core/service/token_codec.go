package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

const claimPurpose = "purpose"

// JWTCodec signs and verifies HS256 session tokens. The signing secret is
// injected at construction and must be identical across all instances of a
// scaled deployment, or tokens minted by one instance fail on another.
type JWTCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewJWTCodec(secret string, accessTTL, refreshTTL time.Duration) *JWTCodec {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTCodec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issue mints a token for subject scoped to purpose. Access and refresh
// tokens share one shape; the purpose claim keeps them non-interchangeable.
func (c *JWTCodec) Issue(subject string, purpose ports.TokenPurpose) (string, error) {
	ttl := c.accessTTL
	if purpose == ports.PurposeRefresh {
		ttl = c.refreshTTL
	}

	now := c.now().UTC()
	claims := jwt.MapClaims{
		"sub":        subject,
		claimPurpose: string(purpose),
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"jti":        uuid.NewString(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature, expiry and purpose, returning the subject claim.
// There is no clock-skew leeway: a token is rejected at the exact expiry
// instant.
func (c *JWTCodec) Verify(token string, purpose ports.TokenPurpose) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	tkn, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	if p, _ := claims[claimPurpose].(string); p != string(purpose) {
		return "", domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}

// ExtractSubject parses the subject without verifying signature or expiry.
// Used by the refresh flow to know which account is involved before the
// token itself has been re-validated; never trust the result on its own.
func (c *JWTCodec) ExtractSubject(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", domain.ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
