package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/api/middleware"
	"github.com/screenhive/platform/internal/core/domain"
)

// ctxPrincipal extracts the authenticated principal bound by the
// authentication gate. Handlers behind RequireAuthority can rely on it being
// present; the 401 here only fires on a miswired route.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	authCtx := middleware.AuthContextFrom(c)
	if authCtx == nil || authCtx.Principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return authCtx.Principal, nil
}
