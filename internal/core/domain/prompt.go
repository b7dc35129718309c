package domain

import (
	"errors"
	"time"
)

// Category classifies a prompt. The set is fixed but deliberately open:
// unknown values are preserved rather than rejected so stored data never
// becomes unreadable after the list changes.
type Category string

const (
	CategoryDevelopment Category = "development"
	CategoryMarketing   Category = "marketing"
	CategoryCreativity  Category = "creativity"
	CategoryAnalysis    Category = "analysis"
	CategoryEducation   Category = "education"
	CategoryBusiness    Category = "business"
	CategoryOther       Category = "other"
)

// Categories lists the built-in categories in display order.
func Categories() []Category {
	return []Category{
		CategoryDevelopment,
		CategoryMarketing,
		CategoryCreativity,
		CategoryAnalysis,
		CategoryEducation,
		CategoryBusiness,
		CategoryOther,
	}
}

// SortField selects the prompt attribute used for ordering.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTitle     SortField = "title"
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

var ErrPromptNotFound = errors.New("prompt not found")

// Prompt is a stored, user-authored text snippet with metadata. The id is
// assigned by the collection engine and unique across the collection;
// UpdatedAt is never earlier than CreatedAt.
type Prompt struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   Category  `json:"category"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PromptFilter is the active search/filter/sort configuration applied to the
// collection. It is session-local state and is never persisted.
type PromptFilter struct {
	Search        string    `json:"search"`
	Category      Category  `json:"category"`
	FavoritesOnly bool      `json:"favoritesOnly"`
	SortBy        SortField `json:"sortBy"`
	SortOrder     SortOrder `json:"sortOrder"`
}

// DefaultPromptFilter returns the filter every session starts with: no search,
// no category restriction, newest first.
func DefaultPromptFilter() PromptFilter {
	return PromptFilter{
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}
}

// PromptTemplate is a built-in reusable template. Content may contain
// bracketed placeholder tokens, e.g. "[TOPIC]".
type PromptTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
