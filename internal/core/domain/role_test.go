package domain

import "testing"

func TestHierarchy_ReachableFromIsOrdered(t *testing.T) {
	h := NewHierarchy()

	chain := []Role{RoleMember, RoleVerifiedMember, RoleModerator, RoleAdmin}
	for i := 1; i < len(chain); i++ {
		higher := h.ReachableFrom(chain[i])
		lower := h.ReachableFrom(chain[i-1])
		for r := range lower {
			if _, ok := higher[r]; !ok {
				t.Fatalf("%s should reach everything %s reaches, missing %s", chain[i], chain[i-1], r)
			}
		}
	}
}

func TestHierarchy_ReachesSelf(t *testing.T) {
	h := NewHierarchy()
	for _, r := range []Role{RoleMember, RoleVerifiedMember, RoleModerator, RoleProductionCompany, RoleAdmin} {
		if !h.Reaches(r, r) {
			t.Fatalf("%s should reach itself", r)
		}
	}
}

func TestHierarchy_ProductionCompanyOnlyUnderAdmin(t *testing.T) {
	h := NewHierarchy()

	if !h.Reaches(RoleAdmin, RoleProductionCompany) {
		t.Fatalf("ADMIN should reach PRODUCTION_COMPANY")
	}
	if h.Reaches(RoleModerator, RoleProductionCompany) {
		t.Fatalf("MODERATOR should not reach PRODUCTION_COMPANY")
	}
	if h.Reaches(RoleProductionCompany, RoleMember) {
		t.Fatalf("PRODUCTION_COMPANY should not reach MEMBER")
	}
}

func TestHierarchy_AdminReachesEverything(t *testing.T) {
	h := NewHierarchy()
	if got := len(h.ReachableFrom(RoleAdmin)); got != 5 {
		t.Fatalf("expected ADMIN to reach all 5 roles, got %d", got)
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("MODERATOR"); !ok || r != RoleModerator {
		t.Fatalf("expected MODERATOR, got %q ok=%v", r, ok)
	}
	if _, ok := ParseRole("SUPERUSER"); ok {
		t.Fatalf("unknown role should not parse")
	}
}

func TestAuthContext_HasAuthority(t *testing.T) {
	h := NewHierarchy()
	authCtx := NewAuthContext(&User{Username: "alice", Role: RoleModerator}, h)

	if !authCtx.HasAuthority(RoleMember) {
		t.Fatalf("moderator should carry MEMBER authority")
	}
	if authCtx.HasAuthority(RoleAdmin) {
		t.Fatalf("moderator should not carry ADMIN authority")
	}

	var nilCtx *AuthContext
	if nilCtx.HasAuthority(RoleMember) {
		t.Fatalf("nil context should carry no authority")
	}
}
