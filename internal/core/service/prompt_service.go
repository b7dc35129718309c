package service

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// categoryAny disables the category filter, like an empty category.
const categoryAny = "any"

const recentLimit = 5

// PromptService owns the prompt collection and its filter spec. The in-memory
// collection is authoritative; every mutation writes the whole serialized
// collection through to the snapshot store under a fixed key. Snapshot write
// failures are logged and never roll back the mutation.
type PromptService struct {
	store ports.SnapshotStore
	log   zerolog.Logger

	mu      sync.Mutex
	prompts []domain.Prompt
	filter  domain.PromptFilter
	loaded  bool
	lastTS  int64 // last issued unix-nano, keeps ids and timestamps strictly increasing
}

func NewPromptService(store ports.SnapshotStore, log zerolog.Logger) *PromptService {
	return &PromptService{
		store:  store,
		log:    log,
		filter: domain.DefaultPromptFilter(),
	}
}

// Add assigns a fresh id and timestamps, appends the prompt and persists.
func (s *PromptService) Add(ctx context.Context, input ports.CreatePromptInput) (*domain.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	now := s.now()
	prompt := domain.Prompt{
		ID:         strconv.FormatInt(now.UnixNano(), 10),
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		Tags:       slices.Clone(input.Tags),
		IsFavorite: input.IsFavorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.prompts = append(s.prompts, prompt)
	s.persist(ctx)

	s.log.Info().Str("id", prompt.ID).Str("category", string(prompt.Category)).Msg("prompt added")
	return &prompt, nil
}

// Get returns the prompt with the given id.
func (s *PromptService) Get(ctx context.Context, id string) (*domain.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrPromptNotFound
	}
	p := s.clone(i)
	return &p, nil
}

// Update merges non-nil fields over the stored prompt and bumps UpdatedAt.
// Unknown ids are a silent no-op.
func (s *PromptService) Update(ctx context.Context, id string, input ports.UpdatePromptInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	p := &s.prompts[i]
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Tags != nil {
		p.Tags = slices.Clone(*input.Tags)
	}
	if input.IsFavorite != nil {
		p.IsFavorite = *input.IsFavorite
	}
	p.UpdatedAt = s.now()
	s.persist(ctx)
	return nil
}

// Delete removes the prompt with the given id. Unknown ids are a silent no-op.
func (s *PromptService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.prompts = append(s.prompts[:i], s.prompts[i+1:]...)
	s.persist(ctx)
	return nil
}

// ToggleFavorite flips the favorite flag and bumps UpdatedAt. Unknown ids are
// a silent no-op.
func (s *PromptService) ToggleFavorite(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.prompts[i].IsFavorite = !s.prompts[i].IsFavorite
	s.prompts[i].UpdatedAt = s.now()
	s.persist(ctx)
	return nil
}

// SetFilter merges non-nil fields into the current filter spec.
func (s *PromptService) SetFilter(input ports.FilterInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Search != nil {
		s.filter.Search = *input.Search
	}
	if input.Category != nil {
		s.filter.Category = *input.Category
	}
	if input.FavoritesOnly != nil {
		s.filter.FavoritesOnly = *input.FavoritesOnly
	}
	if input.SortBy != nil {
		s.filter.SortBy = *input.SortBy
	}
	if input.SortOrder != nil {
		s.filter.SortOrder = *input.SortOrder
	}
}

// Filter returns the current filter spec.
func (s *PromptService) Filter() domain.PromptFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Filtered recomputes the derived view from the collection and the current
// filter spec.
func (s *PromptService) Filtered(ctx context.Context) []domain.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return applyFilter(s.prompts, s.filter)
}

// Favorites returns favorite prompts in insertion order; the filter spec does
// not apply.
func (s *PromptService) Favorites(ctx context.Context) []domain.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	out := make([]domain.Prompt, 0)
	for i, p := range s.prompts {
		if p.IsFavorite {
			out = append(out, s.clone(i))
		}
	}
	return out
}

// Recent returns the first prompts in insertion order; the filter spec does
// not apply.
func (s *PromptService) Recent(ctx context.Context) []domain.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	n := min(recentLimit, len(s.prompts))
	out := make([]domain.Prompt, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.clone(i))
	}
	return out
}

// Load hydrates the collection from its snapshot, replacing in-memory state.
func (s *PromptService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx)
	return nil
}

// --- internals (callers hold s.mu) ---

func (s *PromptService) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		s.hydrate(ctx)
	}
}

// hydrate reads the snapshot and replaces the collection. A missing or
// unreadable snapshot leaves the collection empty; hydration never fails.
func (s *PromptService) hydrate(ctx context.Context) {
	s.loaded = true
	s.prompts = nil

	data, err := s.store.Get(ctx, ports.KeyPrompts)
	if err != nil {
		if !errors.Is(err, ports.ErrSnapshotNotFound) {
			s.log.Warn().Err(err).Msg("failed to read prompt snapshot, starting empty")
		}
		return
	}

	var prompts []domain.Prompt
	if err := json.Unmarshal(data, &prompts); err != nil {
		s.log.Warn().Err(err).Msg("corrupt prompt snapshot, starting empty")
		return
	}
	s.prompts = prompts

	// Keep new ids and timestamps ahead of everything already stored.
	for _, p := range s.prompts {
		if ts := p.UpdatedAt.UnixNano(); ts > s.lastTS {
			s.lastTS = ts
		}
	}
	s.log.Debug().Int("count", len(s.prompts)).Msg("prompt snapshot loaded")
}

// persist writes the whole collection under the fixed snapshot key.
// Best-effort: a failed write is logged and the in-memory state stands.
func (s *PromptService) persist(ctx context.Context) {
	data, err := json.Marshal(s.prompts)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize prompt snapshot")
		return
	}
	if err := s.store.Set(ctx, ports.KeyPrompts, data); err != nil {
		s.log.Error().Err(err).Msg("failed to write prompt snapshot")
	}
}

func (s *PromptService) indexOf(id string) int {
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *PromptService) clone(i int) domain.Prompt {
	p := s.prompts[i]
	p.Tags = slices.Clone(p.Tags)
	return p
}

// now returns a strictly increasing UTC timestamp, so ids derived from it are
// unique and repeated mutations always advance UpdatedAt.
func (s *PromptService) now() time.Time {
	ts := time.Now().UTC().UnixNano()
	if ts <= s.lastTS {
		ts = s.lastTS + 1
	}
	s.lastTS = ts
	return time.Unix(0, ts).UTC()
}

// applyFilter is the pure filter/sort pipeline: search, category and
// favorites filters in that order, then a stable sort. Descending order
// reverses the comparison only; equal keys keep insertion order in both
// directions.
func applyFilter(prompts []domain.Prompt, f domain.PromptFilter) []domain.Prompt {
	search := strings.ToLower(f.Search)

	out := make([]domain.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if f.Category != "" && f.Category != categoryAny && p.Category != f.Category {
			continue
		}
		if f.FavoritesOnly && !p.IsFavorite {
			continue
		}
		p.Tags = slices.Clone(p.Tags)
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return promptLess(out[i], out[j], f.SortBy, f.SortOrder)
	})
	return out
}

func matchesSearch(p domain.Prompt, search string) bool {
	if strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Content), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// promptLess reports whether a sorts before b. Equal keys report false for
// either argument order, which lets the stable sort preserve insertion order.
func promptLess(a, b domain.Prompt, by domain.SortField, order domain.SortOrder) bool {
	var less bool
	switch by {
	case domain.SortByTitle:
		at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if at == bt {
			return false
		}
		less = at < bt
	case domain.SortByUpdatedAt:
		if a.UpdatedAt.Equal(b.UpdatedAt) {
			return false
		}
		less = a.UpdatedAt.Before(b.UpdatedAt)
	default:
		if a.CreatedAt.Equal(b.CreatedAt) {
			return false
		}
		less = a.CreatedAt.Before(b.CreatedAt)
	}
	if order == domain.SortDesc {
		return !less
	}
	return less
}
