package chat

import (
	"errors"
	"testing"

	"github.com/go-stomp/stomp/v3/frame"

	"github.com/screenhive/platform/internal/core/domain"
)

func TestAuthorizer_RuleTable(t *testing.T) {
	h := domain.NewHierarchy()
	member := domain.NewAuthContext(&domain.User{Username: "alice", Role: domain.RoleMember}, h)
	admin := domain.NewAuthContext(&domain.User{Username: "root", Role: domain.RoleAdmin}, h)
	company := domain.NewAuthContext(&domain.User{Username: "acme", Role: domain.RoleProductionCompany}, h)

	var a Authorizer
	cases := []struct {
		name        string
		authCtx     *domain.AuthContext
		command     string
		destination string
		allowed     bool
	}{
		{"no destination, authenticated", member, frame.ACK, "", true},
		{"no destination, anonymous", nil, frame.ACK, "", false},
		{"disconnect, authenticated", member, frame.DISCONNECT, "", true},
		{"subscribe as member", member, frame.SUBSCRIBE, "/topic/lobby", true},
		{"subscribe as admin via hierarchy", admin, frame.SUBSCRIBE, "/topic/lobby", true},
		{"send as member", member, frame.SEND, "/topic/lobby", true},
		{"send without member authority", company, frame.SEND, "/topic/lobby", false},
		{"unsubscribe as member", member, frame.UNSUBSCRIBE, "/topic/lobby", true},
		{"send anonymous", nil, frame.SEND, "/topic/lobby", false},
		{"unknown command with destination", member, frame.BEGIN, "/topic/lobby", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := a.Authorize(tc.authCtx, tc.command, tc.destination)
			if tc.allowed && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, domain.ErrAuthorizationDenied) {
				t.Fatalf("expected ErrAuthorizationDenied, got %v", err)
			}
		})
	}
}
