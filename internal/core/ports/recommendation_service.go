package ports

import (
	"github.com/promptvault/prompt-library/internal/core/domain"
)

// ToolFilter narrows the catalog listing. Zero values mean "no restriction";
// Category additionally treats "All" as unrestricted.
type ToolFilter struct {
	Category    string
	Pricing     domain.Pricing
	OnlyPopular bool
	Search      string
}

// RecommendationService serves the static AI-tool catalog.
type RecommendationService interface {
	// List returns catalog entries matching filter, rating-descending.
	List(filter ToolFilter) []domain.AITool
	// RecommendFor returns up to three tools suited to a prompt category,
	// rating-descending. Unknown categories fall back to the conversational
	// set.
	RecommendFor(promptCategory domain.Category) []domain.AITool
	// Categories lists the catalog categories, "All" first.
	Categories() []string
}
