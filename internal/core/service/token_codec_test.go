package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("secret", time.Minute, time.Hour)

	token, err := codec.Issue("ana@x.com", ports.PurposeAccess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := codec.Verify(token, ports.PurposeAccess)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "ana@x.com" {
		t.Fatalf("expected subject ana@x.com, got %q", subject)
	}
}

func TestJWTCodec_PurposeMismatch(t *testing.T) {
	codec := NewJWTCodec("secret", time.Minute, time.Hour)

	refresh, err := codec.Issue("ana@x.com", ports.PurposeRefresh)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := codec.Verify(refresh, ports.PurposeAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}

	access, err := codec.Issue("ana@x.com", ports.PurposeAccess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := codec.Verify(access, ports.PurposeRefresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestJWTCodec_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 15 * time.Minute

	codec := NewJWTCodec("secret", ttl, time.Hour)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue("ana@x.com", ports.PurposeAccess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Just before expiry the token is still good.
	codec.now = func() time.Time { return issued.Add(ttl - time.Second) }
	if _, err := codec.Verify(token, ports.PurposeAccess); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// At the exact expiry instant the token is rejected: no leeway.
	codec.now = func() time.Time { return issued.Add(ttl) }
	if _, err := codec.Verify(token, ports.PurposeAccess); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at expiry instant, got %v", err)
	}
}

func TestJWTCodec_TamperedSignature(t *testing.T) {
	codec := NewJWTCodec("secret", time.Minute, time.Hour)

	token, err := codec.Issue("ana@x.com", ports.PurposeAccess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one character in the signature segment.
	i := strings.LastIndex(token, ".") + 1
	b := []byte(token)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	if _, err := codec.Verify(string(b), ports.PurposeAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	codec := NewJWTCodec("secret", time.Minute, time.Hour)
	other := NewJWTCodec("different", time.Minute, time.Hour)

	token, err := codec.Issue("ana@x.com", ports.PurposeAccess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := other.Verify(token, ports.PurposeAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("token verified under a different secret: %v", err)
	}
}

func TestJWTCodec_Malformed(t *testing.T) {
	codec := NewJWTCodec("secret", time.Minute, time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := codec.Verify(token, ports.PurposeAccess); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestJWTCodec_ExtractSubject(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := NewJWTCodec("secret", time.Minute, time.Hour)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue("ana@x.com", ports.PurposeAccess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Subject extraction skips verification and works even past expiry.
	codec.now = func() time.Time { return issued.Add(time.Hour) }
	subject, err := codec.ExtractSubject(token)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if subject != "ana@x.com" {
		t.Fatalf("expected subject ana@x.com, got %q", subject)
	}

	if _, err := codec.ExtractSubject("garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
