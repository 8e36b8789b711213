package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/screenhive/platform/internal/core/domain"
)

func translate(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_TokenFailuresAreUnauthorized(t *testing.T) {
	for _, err := range []error{
		domain.ErrTokenMalformed,
		domain.ErrTokenInvalidSignature,
		domain.ErrTokenExpired,
		domain.ErrInvalidCredentials,
	} {
		if code, _ := translate(t, err); code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", err, code)
		}
	}
}

func TestErrorHandler_StatusFailuresAreForbidden(t *testing.T) {
	until := time.Now().Add(time.Hour).Format(time.RFC3339)
	suspended := fmt.Errorf("%w until %s: spam", domain.ErrAccountSuspended, until)

	code, msg := translate(t, suspended)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	// The caller-visible message keeps the suspension end time and reason.
	if msg != suspended.Error() {
		t.Fatalf("suspension details lost: %q", msg)
	}

	if code, _ := translate(t, domain.ErrAccountBanned); code != http.StatusForbidden {
		t.Fatalf("expected 403 for ban, got %d", code)
	}
}

func TestErrorHandler_AuthorizationDenied(t *testing.T) {
	code, msg := translate(t, domain.ErrAuthorizationDenied)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if msg != "access forbidden" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, _ := translate(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := translate(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
