package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/api/metrics"
	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
	"github.com/screenhive/platform/internal/core/service"
)

// authContextKey is where the request-scoped AuthContext lives on the echo
// context.
const authContextKey = "auth_context"

// AuthContextFrom returns the AuthContext bound to the request, or nil when
// the request is anonymous.
func AuthContextFrom(c echo.Context) *domain.AuthContext {
	authCtx, _ := c.Get(authContextKey).(*domain.AuthContext)
	return authCtx
}

// Authenticate is the single per-request authentication gate. A missing or
// non-Bearer Authorization header lets the request through anonymously; a
// present credential is verified, its principal loaded and suspension-checked,
// and on success an AuthContext with the principal's authority set is bound
// to the request. If an AuthContext is already bound, the credential is not
// re-validated for this request.
func Authenticate(tokens *service.TokenService, directory ports.UserDirectory, hierarchy *domain.Hierarchy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			if AuthContextFrom(c) != nil {
				return next(c)
			}

			token := parts[1]
			subject, err := tokens.ExtractSubject(token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			user, err := directory.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrInvalidCredentials
				}
				return err
			}

			// Suspension short-circuits before token/subject validation.
			if err := service.CheckSuspension(user); err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			if !tokens.IsValidFor(token, user) {
				metrics.AuthFailuresTotal.WithLabelValues("subject_mismatch").Inc()
				return domain.ErrInvalidCredentials
			}

			c.Set(authContextKey, domain.NewAuthContext(user, hierarchy))
			metrics.AuthSuccessTotal.Inc()
			return next(c)
		}
	}
}

// failureReason flattens a gate failure into a low-cardinality metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMalformed):
		return "token_malformed"
	case errors.Is(err, domain.ErrTokenInvalidSignature):
		return "token_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, domain.ErrAccountBanned):
		return "banned"
	case errors.Is(err, domain.ErrAccountSuspended):
		return "suspended"
	default:
		return "other"
	}
}
