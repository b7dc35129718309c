package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promptvault/prompt-library/internal/api/metrics"
	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/service"
)

// TemplateHandler serves the built-in template catalog and renders templates
// with caller-supplied variables.
type TemplateHandler struct {
	templates []domain.PromptTemplate
}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{templates: service.BuiltinTemplates()}
}

type renderRequest struct {
	Template  string            `json:"template"  validate:"required"`
	Variables map[string]string `json:"variables"`
}

type renderResponse struct {
	Rendered string `json:"rendered"`
}

type listTemplatesResponse struct {
	Data []domain.PromptTemplate `json:"data"`
}

// List handles GET /v1/templates.
//
// @Summary      List built-in prompt templates
// @Tags         templates
// @Produce      json
// @Success      200  {object}  listTemplatesResponse
// @Router       /v1/templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, listTemplatesResponse{Data: h.templates})
}

// Render handles POST /v1/templates/render: substitutes [NAME] tokens with
// the supplied variables, leaving unmatched tokens verbatim.
//
// @Summary      Render a template with variables
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body      renderRequest  true  "Template and variables"
// @Success      200   {object}  renderResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/templates/render [post]
func (h *TemplateHandler) Render(c echo.Context) error {
	var req renderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	metrics.TemplateRendersTotal.Inc()
	return c.JSON(http.StatusOK, renderResponse{
		Rendered: service.RenderTemplate(req.Template, req.Variables),
	})
}
