package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promptvault/prompt-library/internal/api/metrics"
	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// PromptHandler handles HTTP requests for the prompt collection.
type PromptHandler struct {
	service ports.PromptService
}

func NewPromptHandler(service ports.PromptService) *PromptHandler {
	return &PromptHandler{service: service}
}

// Create handles POST /v1/prompts.
//
// @Summary      Create a new prompt
// @Tags         prompts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPromptRequest  true  "Prompt details"
// @Success      201   {object}  promptResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/prompts [post]
func (h *PromptHandler) Create(c echo.Context) error {
	var req createPromptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	prompt, err := h.service.Add(c.Request().Context(), ports.CreatePromptInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   domain.Category(req.Category),
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create prompt"})
	}

	metrics.PromptsCreatedTotal.WithLabelValues(string(prompt.Category)).Inc()
	return c.JSON(http.StatusCreated, toPromptResponse(*prompt))
}

// List handles GET /v1/prompts — the filtered, sorted view.
//
// @Summary      List prompts through the active filter
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPromptsResponse
// @Router       /v1/prompts [get]
func (h *PromptHandler) List(c echo.Context) error {
	prompts := h.service.Filtered(c.Request().Context())
	return c.JSON(http.StatusOK, listPromptsResponse{
		Data:  toPromptResponses(prompts),
		Total: len(prompts),
	})
}

// Get handles GET /v1/prompts/:id.
//
// @Summary      Get a prompt by id
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Prompt id"
// @Success      200  {object}  promptResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/prompts/{id} [get]
func (h *PromptHandler) Get(c echo.Context) error {
	prompt, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPromptNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "prompt not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toPromptResponse(*prompt))
}

// Update handles PATCH /v1/prompts/:id. Unknown ids are a no-op, mirroring
// the collection's idempotent-miss policy.
//
// @Summary      Update a prompt
// @Tags         prompts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "Prompt id"
// @Param        body  body  updatePromptRequest  true  "Fields to update"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Router       /v1/prompts/{id} [patch]
func (h *PromptHandler) Update(c echo.Context) error {
	var req updatePromptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.UpdatePromptInput{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		input.Category = &category
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), input); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update prompt"})
	}
	metrics.PromptMutationsTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/prompts/:id.
//
// @Summary      Delete a prompt
// @Tags         prompts
// @Security     BearerAuth
// @Param        id  path  string  true  "Prompt id"
// @Success      204
// @Router       /v1/prompts/{id} [delete]
func (h *PromptHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete prompt"})
	}
	metrics.PromptMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleFavorite handles POST /v1/prompts/:id/favorite.
//
// @Summary      Toggle a prompt's favorite flag
// @Tags         prompts
// @Security     BearerAuth
// @Param        id  path  string  true  "Prompt id"
// @Success      204
// @Router       /v1/prompts/{id}/favorite [post]
func (h *PromptHandler) ToggleFavorite(c echo.Context) error {
	if err := h.service.ToggleFavorite(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to toggle favorite"})
	}
	metrics.PromptMutationsTotal.WithLabelValues("toggle_favorite").Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetFilter handles PUT /v1/prompts/filters: merges the supplied fields into
// the session-local filter spec and returns the effective spec.
//
// @Summary      Update the active filter spec
// @Tags         prompts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      filterRequest  true  "Filter fields to merge"
// @Success      200   {object}  filterResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/prompts/filters [put]
func (h *PromptHandler) SetFilter(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	h.service.SetFilter(req.toInput())
	return c.JSON(http.StatusOK, toFilterResponse(h.service.Filter()))
}

// Favorites handles GET /v1/prompts/favorites.
//
// @Summary      List favorite prompts
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPromptsResponse
// @Router       /v1/prompts/favorites [get]
func (h *PromptHandler) Favorites(c echo.Context) error {
	prompts := h.service.Favorites(c.Request().Context())
	return c.JSON(http.StatusOK, listPromptsResponse{
		Data:  toPromptResponses(prompts),
		Total: len(prompts),
	})
}

type listPromptCategoriesResponse struct {
	Data []domain.Category `json:"data"`
}

// Categories handles GET /v1/prompts/categories.
//
// @Summary      List prompt categories
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPromptCategoriesResponse
// @Router       /v1/prompts/categories [get]
func (h *PromptHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, listPromptCategoriesResponse{Data: domain.Categories()})
}

// Recent handles GET /v1/prompts/recent.
//
// @Summary      List the recent-prompts slice of the collection
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPromptsResponse
// @Router       /v1/prompts/recent [get]
func (h *PromptHandler) Recent(c echo.Context) error {
	prompts := h.service.Recent(c.Request().Context())
	return c.JSON(http.StatusOK, listPromptsResponse{
		Data:  toPromptResponses(prompts),
		Total: len(prompts),
	})
}
