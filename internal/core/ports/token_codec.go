package ports

// TokenPurpose scopes a token to the single use it was minted for. A refresh
// token is never accepted where an access token is required, and vice versa.
type TokenPurpose string

const (
	PurposeAccess  TokenPurpose = "access"
	PurposeRefresh TokenPurpose = "refresh"
)

// TokenCodec produces and verifies signed, expiring bearer tokens. Tokens
// are stateless: validity is purely a function of signature, expiry and
// purpose, so nothing is stored server-side.
type TokenCodec interface {
	// Issue mints a token bound to subject with the TTL configured for purpose.
	Issue(subject string, purpose TokenPurpose) (string, error)
	// Verify checks signature, expiry and purpose, returning the subject.
	// Fails with domain.ErrTokenExpired or domain.ErrInvalidToken.
	Verify(token string, purpose TokenPurpose) (string, error)
	// ExtractSubject parses the subject claim without verifying the token.
	// Callers must still Verify before trusting the result for any
	// authorization decision.
	ExtractSubject(token string) (string, error)
}
