package domain

// Role is the single authorization level assigned to a principal. Roles are
// flat in storage; what a role implies is declared by the Hierarchy below.
type Role string

const (
	RoleMember            Role = "MEMBER"
	RoleVerifiedMember    Role = "VERIFIED_MEMBER"
	RoleModerator         Role = "MODERATOR"
	RoleProductionCompany Role = "PRODUCTION_COMPANY"
	RoleAdmin             Role = "ADMIN"
)

// ParseRole maps a stored or claimed role string onto a known Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMember, RoleVerifiedMember, RoleModerator, RoleProductionCompany, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// hierarchyEdges declares which roles a higher role directly implies.
// PRODUCTION_COMPANY hangs off ADMIN only; moderators do not gain it.
var hierarchyEdges = map[Role][]Role{
	RoleAdmin:          {RoleModerator, RoleProductionCompany},
	RoleModerator:      {RoleVerifiedMember},
	RoleVerifiedMember: {RoleMember},
}

// Hierarchy is the transitive closure of the role implication graph. It is
// built once at startup and is safe for unbounded concurrent reads.
type Hierarchy struct {
	reach map[Role]map[Role]struct{}
}

// NewHierarchy computes the reachability closure over hierarchyEdges. Every
// role reaches at least itself.
func NewHierarchy() *Hierarchy {
	h := &Hierarchy{reach: make(map[Role]map[Role]struct{})}
	for _, r := range []Role{RoleMember, RoleVerifiedMember, RoleModerator, RoleProductionCompany, RoleAdmin} {
		set := make(map[Role]struct{})
		h.collect(r, set)
		h.reach[r] = set
	}
	return h
}

func (h *Hierarchy) collect(r Role, into map[Role]struct{}) {
	if _, seen := into[r]; seen {
		return
	}
	into[r] = struct{}{}
	for _, implied := range hierarchyEdges[r] {
		h.collect(implied, into)
	}
}

// ReachableFrom returns the role itself plus every role it transitively
// implies. The returned map is a copy; callers may keep it.
func (h *Hierarchy) ReachableFrom(r Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(h.reach[r]))
	for implied := range h.reach[r] {
		set[implied] = struct{}{}
	}
	return set
}

// Reaches reports whether holding role r satisfies a requirement for target.
func (h *Hierarchy) Reaches(r, target Role) bool {
	_, ok := h.reach[r][target]
	return ok
}
