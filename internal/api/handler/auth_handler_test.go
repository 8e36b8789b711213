package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/core/domain"
)

type stubAccounts struct {
	registered *domain.User
	loginToken string
	loginUser  *domain.User
	loginErr   error
}

func (s *stubAccounts) Register(_ context.Context, username, password, email, displayName string) (*domain.User, error) {
	if s.registered != nil {
		return nil, domain.ErrUserExists
	}
	s.registered = &domain.User{Username: username, Email: email, DisplayName: displayName, Role: domain.RoleMember}
	return s.registered, nil
}

func (s *stubAccounts) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func (s *stubAccounts) Profile(_ context.Context, username string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func postJSON(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	accounts := &stubAccounts{}
	h := NewAuthHandler(accounts)

	c, rec := postJSON(t, "/auth/register",
		`{"username":"alice","password":"passw0rd1","email":"alice@example.com","display_name":"Alice"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if accounts.registered == nil || accounts.registered.Username != "alice" {
		t.Fatalf("account not created: %+v", accounts.registered)
	}
}

func TestAuthHandler_Register_RejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAccounts{})

	c, _ := postJSON(t, "/auth/register", `{"username":"al","password":"short","email":"not-an-email"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	accounts := &stubAccounts{
		loginToken: "signed-token",
		loginUser:  &domain.User{Username: "alice", Role: domain.RoleMember},
	}
	h := NewAuthHandler(accounts)

	c, rec := postJSON(t, "/auth/login", `{"email":"alice@example.com","password":"passw0rd1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_PropagatesAuthFailure(t *testing.T) {
	accounts := &stubAccounts{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(accounts)

	c, _ := postJSON(t, "/auth/login", `{"email":"alice@example.com","password":"wrong-pass"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to reach the error handler, got %v", err)
	}
}
