package chat

import (
	"context"
	"strings"

	"github.com/go-stomp/stomp/v3/frame"

	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
	"github.com/screenhive/platform/internal/core/service"
)

// connectAllowList is the set of authorities a principal must intersect to
// establish a chat connection. Production companies and any other role that
// does not reach MEMBER or VERIFIED_MEMBER are refused even with a valid
// token.
var connectAllowList = []domain.Role{domain.RoleMember, domain.RoleVerifiedMember}

// Handshake authenticates the connection-establishment frame of a chat
// session. It runs exactly once per connection, before any other frame is
// processed; the AuthContext it produces is bound to the connection for its
// whole lifetime.
type Handshake struct {
	tokens    *service.TokenService
	directory ports.UserDirectory
	hierarchy *domain.Hierarchy
}

func NewHandshake(tokens *service.TokenService, directory ports.UserDirectory, hierarchy *domain.Hierarchy) *Handshake {
	return &Handshake{tokens: tokens, directory: directory, hierarchy: hierarchy}
}

// Authenticate resolves the credential carried by a CONNECT (or STOMP) frame
// into an AuthContext. Unlike the HTTP gate, anonymous connections are not
// permitted: a missing credential is a hard failure.
func (h *Handshake) Authenticate(ctx context.Context, f *frame.Frame) (*domain.AuthContext, error) {
	token, ok := credentialFrom(f)
	if !ok {
		return nil, domain.ErrMissingCredential
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidCredential
	}

	user, err := h.directory.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidCredential
	}

	authCtx := domain.NewAuthContext(user, h.hierarchy)
	for _, r := range connectAllowList {
		if authCtx.HasAuthority(r) {
			return authCtx, nil
		}
	}
	return nil, domain.ErrForbiddenRole
}

// credentialFrom extracts the session token from a CONNECT frame, checking in
// order: "Authorization" (Bearer-prefixed or bare), "authorization" (same
// rule), then "token" (always bare). STOMP header names are case-sensitive,
// so the two spellings are distinct headers.
func credentialFrom(f *frame.Frame) (string, bool) {
	for _, header := range []string{"Authorization", "authorization"} {
		if v := f.Header.Get(header); v != "" {
			return stripBearer(v), true
		}
	}
	if v := f.Header.Get("token"); v != "" {
		return v, true
	}
	return "", false
}

func stripBearer(v string) string {
	parts := strings.SplitN(v, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return v
}
