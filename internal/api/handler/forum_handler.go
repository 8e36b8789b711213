package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
)

// ForumHandler handles HTTP requests for forum threads.
type ForumHandler struct {
	service ports.ForumService
}

func NewForumHandler(service ports.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

type createThreadRequest struct {
	Title string `json:"title" validate:"required,min=3"`
	Body  string `json:"body"  validate:"required"`
}

type threadListResponse struct {
	Threads []domain.ForumThread `json:"threads"`
}

// List returns recent forum threads. Public; no authentication required.
//
// @Summary      List forum threads
// @Tags         forum
// @Produce      json
// @Success      200  {object}  threadListResponse
// @Router       /forum/threads [get]
func (h *ForumHandler) List(c echo.Context) error {
	threads, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, threadListResponse{Threads: threads})
}

// Create opens a new thread. Requires the VERIFIED_MEMBER authority.
//
// @Summary      Create a forum thread
// @Tags         forum
// @Accept       json
// @Produce      json
// @Param        body  body      createThreadRequest  true  "Thread content"
// @Success      201   {object}  domain.ForumThread
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /forum/threads [post]
func (h *ForumHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thread, err := h.service.Create(c.Request().Context(), principal.Username, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, thread)
}

// Delete removes a thread. Requires the MODERATOR authority.
//
// @Summary      Delete a forum thread
// @Tags         forum
// @Param        id  path  string  true  "Thread ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /forum/threads/{id} [delete]
func (h *ForumHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
