package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/screenhive/platform/internal/core/domain"
)

// tokenSchemaVersion is stamped into every issued token so a future claims
// layout change can invalidate old tokens wholesale.
const tokenSchemaVersion = 1

// TokenClaims is the payload of a session token. The subject is the
// principal's username at issuance time; id, email and role are informational
// snapshots and are not re-validated against current principal state.
type TokenClaims struct {
	UserID string      `json:"id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	Ver    int         `json:"ver"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. The signing
// key is loaded once at startup; there is no revocation store, so freshness
// is bounded only by the configured time-to-live.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given principal with subject = username and
// expiry = now + ttl.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Ver:    tokenSchemaVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes and validates a token, returning its claims.
// Failure modes: domain.ErrTokenMalformed, domain.ErrTokenInvalidSignature,
// domain.ErrTokenExpired.
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case err == nil && parsed.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, domain.ErrTokenInvalidSignature
	default:
		return nil, domain.ErrTokenMalformed
	}
}

// ExtractSubject returns only the subject claim, with the same failure
// taxonomy as Verify.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsValidFor reports whether the token is unexpired and its subject equals
// the principal's current username. Verification failures are not
// propagated; they simply make the token invalid for the principal.
func (s *TokenService) IsValidFor(token string, user *domain.User) bool {
	subject, err := s.ExtractSubject(token)
	if err != nil {
		return false
	}
	return subject == user.Username
}
