package domain

// AuthContext is the per-request (HTTP) or per-connection (WebSocket) result
// of a successful authentication: the resolved principal plus the authority
// set derived from its role. It is built once at the gate and never mutated;
// WebSocket connections keep theirs for the lifetime of the connection.
type AuthContext struct {
	Principal   *User
	Authorities map[Role]struct{}
}

// NewAuthContext resolves the principal's authority set through the hierarchy.
func NewAuthContext(p *User, h *Hierarchy) *AuthContext {
	return &AuthContext{Principal: p, Authorities: h.ReachableFrom(p.Role)}
}

// HasAuthority reports whether the context carries the given authority,
// directly or via the hierarchy.
func (a *AuthContext) HasAuthority(r Role) bool {
	if a == nil {
		return false
	}
	_, ok := a.Authorities[r]
	return ok
}
