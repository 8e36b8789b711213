package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/core/ports"
)

type MemberHandler struct {
	accounts ports.AccountService
}

func NewMemberHandler(accounts ports.AccountService) *MemberHandler {
	return &MemberHandler{accounts: accounts}
}

// Me returns the authenticated principal's own profile.
//
// @Summary      Current member profile
// @Tags         members
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /members/me [get]
func (h *MemberHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Request().Context(), principal.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
