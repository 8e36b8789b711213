package domain

import "errors"

// Token lifecycle failures raised by the token service.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Account status failures. Banned takes precedence over suspended; the two
// are never raised together for the same principal.
var (
	ErrAccountSuspended = errors.New("account suspended")
	ErrAccountBanned    = errors.New("account banned")
)

// Handshake failures, raised only at WebSocket connection establishment.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrForbiddenRole     = errors.New("role not permitted to connect")
)

// ErrAuthorizationDenied signals insufficient authority for a message or
// endpoint after successful authentication.
var ErrAuthorizationDenied = errors.New("authorization denied")

// Directory and catalog errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWatchlistNotFound  = errors.New("watchlist entry not found")
	ErrThreadNotFound     = errors.New("thread not found")
)
