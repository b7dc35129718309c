package ports

import (
	"context"

	"github.com/promptvault/prompt-library/internal/core/domain"
)

// CreatePromptInput carries all caller-supplied data for a new prompt. The id
// and both timestamps are assigned by the engine, never by the caller.
type CreatePromptInput struct {
	Title      string
	Content    string
	Category   domain.Category
	Tags       []string
	IsFavorite bool
}

// UpdatePromptInput is a partial update: nil fields keep their current value.
type UpdatePromptInput struct {
	Title      *string
	Content    *string
	Category   *domain.Category
	Tags       *[]string
	IsFavorite *bool
}

// FilterInput is a partial filter spec merged over the current one: nil
// fields are left as they are.
type FilterInput struct {
	Search        *string
	Category      *domain.Category
	FavoritesOnly *bool
	SortBy        *domain.SortField
	SortOrder     *domain.SortOrder
}

// PromptService defines the use-case operations of the prompt collection.
//
// Mutations are write-through: the in-memory collection is updated first and
// stays authoritative for the running session even when the snapshot write
// fails. Update, Delete and ToggleFavorite are no-ops on an unknown id.
type PromptService interface {
	Add(ctx context.Context, input CreatePromptInput) (*domain.Prompt, error)
	Get(ctx context.Context, id string) (*domain.Prompt, error)
	Update(ctx context.Context, id string, input UpdatePromptInput) error
	Delete(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error

	// SetFilter merges input into the current filter spec. The spec is
	// session-local and never persisted.
	SetFilter(input FilterInput)
	Filter() domain.PromptFilter

	// Filtered returns the derived view: search, category and favorites
	// filters applied in order, then a stable sort.
	Filtered(ctx context.Context) []domain.Prompt
	// Favorites returns favorite prompts in insertion order, ignoring the
	// filter spec.
	Favorites(ctx context.Context) []domain.Prompt
	// Recent returns the first five prompts in insertion order, ignoring the
	// filter spec.
	Recent(ctx context.Context) []domain.Prompt

	// Load hydrates the collection from its snapshot. Missing or corrupt
	// snapshots leave the collection empty; Load never fails on them.
	Load(ctx context.Context) error
}
