package chat

import (
	"github.com/go-stomp/stomp/v3/frame"

	"github.com/screenhive/platform/internal/core/domain"
)

// Authorizer decides, per frame, whether the connection's bound AuthContext
// may perform the requested operation. Rules are evaluated top to bottom and
// anything not explicitly allowed is denied.
type Authorizer struct{}

// Authorize applies the rule table:
//   - no destination            → any authenticated context
//   - connect/disconnect frames → any authenticated context
//   - subscribe/unsubscribe/send → MEMBER authority (transitively satisfied)
//   - anything else             → denied
func (Authorizer) Authorize(authCtx *domain.AuthContext, command, destination string) error {
	switch {
	case destination == "":
		return requireAuthenticated(authCtx)
	case command == frame.CONNECT || command == frame.STOMP || command == frame.DISCONNECT:
		return requireAuthenticated(authCtx)
	case command == frame.SUBSCRIBE || command == frame.UNSUBSCRIBE || command == frame.SEND:
		if err := requireAuthenticated(authCtx); err != nil {
			return err
		}
		if !authCtx.HasAuthority(domain.RoleMember) {
			return domain.ErrAuthorizationDenied
		}
		return nil
	default:
		return domain.ErrAuthorizationDenied
	}
}

func requireAuthenticated(authCtx *domain.AuthContext) error {
	if authCtx == nil || authCtx.Principal == nil {
		return domain.ErrAuthorizationDenied
	}
	return nil
}
