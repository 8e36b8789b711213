package service

import (
	"errors"
	"testing"
	"time"

	"github.com/screenhive/platform/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleMember,
	}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	user := testUser()

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.UserID != "u-1" || claims.Email != "alice@example.com" || claims.Role != domain.RoleMember {
		t.Fatalf("claims do not match principal: %+v", claims)
	}
	if claims.Ver != tokenSchemaVersion {
		t.Fatalf("unexpected schema version %d", claims.Ver)
	}
}

func TestTokenService_WrongKeyFailsSignature(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Minute)
	verifier := NewTokenService("secret-b", time.Minute)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenInvalidSignature) {
		t.Fatalf("expected ErrTokenInvalidSignature, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", -time.Second)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_ExtractSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := svc.ExtractSubject(token)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("unexpected subject %q", subject)
	}

	if _, err := svc.ExtractSubject("garbage"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_IsValidFor(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	user := testUser()

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if !svc.IsValidFor(token, user) {
		t.Fatalf("token should be valid for its own principal")
	}

	// Subject no longer matches after a username change.
	renamed := *user
	renamed.Username = "alice2"
	if svc.IsValidFor(token, &renamed) {
		t.Fatalf("token should not be valid for a different username")
	}

	// Expired tokens are invalid regardless of subject; no error escapes.
	expired, err := NewTokenService("secret", -time.Second).Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if svc.IsValidFor(expired, user) {
		t.Fatalf("expired token should not be valid")
	}

	if svc.IsValidFor("garbage", user) {
		t.Fatalf("malformed token should not be valid")
	}
}
