package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
)

// WatchlistHandler handles HTTP requests for a member's watchlist.
type WatchlistHandler struct {
	service ports.WatchlistService
}

func NewWatchlistHandler(service ports.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{service: service}
}

type addWatchlistRequest struct {
	TitleID   string `json:"title_id"   validate:"required"`
	TitleName string `json:"title_name" validate:"required"`
	Notes     string `json:"notes"`
}

type watchlistResponse struct {
	Entries []domain.WatchlistEntry `json:"entries"`
}

// List returns the authenticated member's watchlist.
//
// @Summary      List watchlist entries
// @Tags         watchlists
// @Produce      json
// @Success      200  {object}  watchlistResponse
// @Failure      401  {object}  map[string]string
// @Router       /watchlists [get]
func (h *WatchlistHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), principal.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, watchlistResponse{Entries: entries})
}

// Add saves a title to the authenticated member's watchlist.
//
// @Summary      Add a watchlist entry
// @Tags         watchlists
// @Accept       json
// @Produce      json
// @Param        body  body      addWatchlistRequest  true  "Title to save"
// @Success      201   {object}  domain.WatchlistEntry
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /watchlists [post]
func (h *WatchlistHandler) Add(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Add(c.Request().Context(), principal.Username, req.TitleID, req.TitleName, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Remove deletes one of the authenticated member's watchlist entries.
//
// @Summary      Remove a watchlist entry
// @Tags         watchlists
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /watchlists/{id} [delete]
func (h *WatchlistHandler) Remove(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), principal.Username, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
