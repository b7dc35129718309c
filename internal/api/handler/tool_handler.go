package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// ToolHandler serves the static AI-tool catalog.
type ToolHandler struct {
	service ports.RecommendationService
}

func NewToolHandler(service ports.RecommendationService) *ToolHandler {
	return &ToolHandler{service: service}
}

type listToolsResponse struct {
	Data  []domain.AITool `json:"data"`
	Total int             `json:"total"`
}

// List handles GET /v1/tools.
//
// @Summary      List catalog tools
// @Tags         tools
// @Produce      json
// @Param        category  query     string  false  "Tool category ('All' or empty lists everything)"
// @Param        pricing   query     string  false  "Pricing tier (free, freemium, paid)"
// @Param        popular   query     bool    false  "Only popular tools"
// @Param        search    query     string  false  "Substring match on name, description or features"
// @Success      200       {object}  listToolsResponse
// @Router       /v1/tools [get]
func (h *ToolHandler) List(c echo.Context) error {
	onlyPopular, _ := strconv.ParseBool(c.QueryParam("popular"))

	tools := h.service.List(ports.ToolFilter{
		Category:    c.QueryParam("category"),
		Pricing:     domain.Pricing(c.QueryParam("pricing")),
		OnlyPopular: onlyPopular,
		Search:      c.QueryParam("search"),
	})
	return c.JSON(http.StatusOK, listToolsResponse{Data: tools, Total: len(tools)})
}

type listCategoriesResponse struct {
	Data []string `json:"data"`
}

// Categories handles GET /v1/tools/categories.
//
// @Summary      List tool catalog categories
// @Tags         tools
// @Produce      json
// @Success      200  {object}  listCategoriesResponse
// @Router       /v1/tools/categories [get]
func (h *ToolHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, listCategoriesResponse{Data: h.service.Categories()})
}

// Recommendations handles GET /v1/tools/recommendations.
//
// @Summary      Recommend tools for a prompt category
// @Tags         tools
// @Produce      json
// @Param        category  query     string  true  "Prompt category"
// @Success      200       {object}  listToolsResponse
// @Router       /v1/tools/recommendations [get]
func (h *ToolHandler) Recommendations(c echo.Context) error {
	tools := h.service.RecommendFor(domain.Category(c.QueryParam("category")))
	return c.JSON(http.StatusOK, listToolsResponse{Data: tools, Total: len(tools)})
}
