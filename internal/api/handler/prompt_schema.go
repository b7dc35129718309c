package handler

import (
	"time"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createPromptRequest struct {
	Title      string   `json:"title"      validate:"required,max=200"`
	Content    string   `json:"content"    validate:"required"`
	Category   string   `json:"category"   validate:"required"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
}

// updatePromptRequest is a partial update; absent fields keep their value.
type updatePromptRequest struct {
	Title      *string   `json:"title"      validate:"omitempty,max=200"`
	Content    *string   `json:"content"`
	Category   *string   `json:"category"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"isFavorite"`
}

// filterRequest is a partial filter spec; absent fields keep their value.
type filterRequest struct {
	Search        *string `json:"search"`
	Category      *string `json:"category"`
	FavoritesOnly *bool   `json:"favoritesOnly"`
	SortBy        *string `json:"sortBy"    validate:"omitempty,oneof=createdAt updatedAt title"`
	SortOrder     *string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

func (r *filterRequest) toInput() ports.FilterInput {
	input := ports.FilterInput{
		Search:        r.Search,
		FavoritesOnly: r.FavoritesOnly,
	}
	if r.Category != nil {
		category := domain.Category(*r.Category)
		input.Category = &category
	}
	if r.SortBy != nil {
		sortBy := domain.SortField(*r.SortBy)
		input.SortBy = &sortBy
	}
	if r.SortOrder != nil {
		sortOrder := domain.SortOrder(*r.SortOrder)
		input.SortOrder = &sortOrder
	}
	return input
}

// --- Response types ---

// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type promptResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toPromptResponse(p domain.Prompt) promptResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return promptResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Category:   string(p.Category),
		Tags:       tags,
		IsFavorite: p.IsFavorite,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toPromptResponses(prompts []domain.Prompt) []promptResponse {
	out := make([]promptResponse, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, toPromptResponse(p))
	}
	return out
}

type listPromptsResponse struct {
	Data  []promptResponse `json:"data"`
	Total int              `json:"total"`
}

type filterResponse struct {
	Search        string `json:"search"`
	Category      string `json:"category"`
	FavoritesOnly bool   `json:"favoritesOnly"`
	SortBy        string `json:"sortBy"`
	SortOrder     string `json:"sortOrder"`
}

func toFilterResponse(f domain.PromptFilter) filterResponse {
	return filterResponse{
		Search:        f.Search,
		Category:      string(f.Category),
		FavoritesOnly: f.FavoritesOnly,
		SortBy:        string(f.SortBy),
		SortOrder:     string(f.SortOrder),
	}
}
