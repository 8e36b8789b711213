package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/core/domain"
)

// RequireAuthority gates a route on an authority. The hierarchy is already
// resolved into the request's AuthContext, so any role that reaches the
// required one passes. Anonymous requests are rejected outright.
func RequireAuthority(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authCtx := AuthContextFrom(c)
			if authCtx == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !authCtx.HasAuthority(role) {
				return domain.ErrAuthorizationDenied
			}
			return next(c)
		}
	}
}
