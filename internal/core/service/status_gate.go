package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/screenhive/platform/internal/core/domain"
)

// banYearThreshold marks a suspension end date that effectively means
// "forever".
const banYearThreshold = 9999

// CheckSuspension reports whether a principal may authenticate.
// A ban (permanent) is signalled by a suspension reason containing
// "permanent" or an end date at banYearThreshold or later; it takes
// precedence over a temporary suspension. A suspension that is absent or
// already elapsed passes.
func CheckSuspension(user *domain.User) error {
	if strings.Contains(strings.ToLower(user.SuspendedReason), "permanent") {
		return domain.ErrAccountBanned
	}
	if user.SuspendedUntil == nil {
		return nil
	}
	if user.SuspendedUntil.Year() >= banYearThreshold {
		return domain.ErrAccountBanned
	}
	if user.SuspendedUntil.After(time.Now()) {
		if user.SuspendedReason != "" {
			return fmt.Errorf("%w until %s: %s",
				domain.ErrAccountSuspended, user.SuspendedUntil.Format(time.RFC3339), user.SuspendedReason)
		}
		return fmt.Errorf("%w until %s",
			domain.ErrAccountSuspended, user.SuspendedUntil.Format(time.RFC3339))
	}
	return nil
}
