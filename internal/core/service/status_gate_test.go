package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/screenhive/platform/internal/core/domain"
)

func TestCheckSuspension_NoSuspension(t *testing.T) {
	if err := CheckSuspension(&domain.User{Username: "alice"}); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestCheckSuspension_ElapsedSuspension(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	user := &domain.User{Username: "alice", SuspendedUntil: &past, SuspendedReason: "spam"}

	if err := CheckSuspension(user); err != nil {
		t.Fatalf("elapsed suspension should pass, got %v", err)
	}
}

func TestCheckSuspension_TemporarySuspension(t *testing.T) {
	until := time.Now().Add(time.Hour)
	user := &domain.User{Username: "alice", SuspendedUntil: &until, SuspendedReason: "spam"}

	err := CheckSuspension(user)
	if !errors.Is(err, domain.ErrAccountSuspended) {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
	if !strings.Contains(err.Error(), until.Format(time.RFC3339)) {
		t.Fatalf("message should state the suspension end time: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "spam") {
		t.Fatalf("message should state the reason: %q", err.Error())
	}
}

func TestCheckSuspension_BanByFarFutureDate(t *testing.T) {
	forever := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &domain.User{Username: "alice", SuspendedUntil: &forever, SuspendedReason: "spam"}

	if err := CheckSuspension(user); !errors.Is(err, domain.ErrAccountBanned) {
		t.Fatalf("expected ErrAccountBanned, got %v", err)
	}
}

func TestCheckSuspension_BanByReason(t *testing.T) {
	until := time.Now().Add(time.Hour)
	user := &domain.User{Username: "alice", SuspendedUntil: &until, SuspendedReason: "Permanent ban for abuse"}

	if err := CheckSuspension(user); !errors.Is(err, domain.ErrAccountBanned) {
		t.Fatalf("expected ErrAccountBanned, got %v", err)
	}
}

func TestCheckSuspension_BannedTakesPrecedence(t *testing.T) {
	// Both ban signals present; the failure must still be a ban, never a
	// temporary suspension.
	forever := time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &domain.User{Username: "alice", SuspendedUntil: &forever, SuspendedReason: "permanent"}

	err := CheckSuspension(user)
	if !errors.Is(err, domain.ErrAccountBanned) {
		t.Fatalf("expected ErrAccountBanned, got %v", err)
	}
	if errors.Is(err, domain.ErrAccountSuspended) {
		t.Fatalf("ban and suspension must be mutually exclusive")
	}
}
