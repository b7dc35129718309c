package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

type stubPromptService struct {
	addFn       func(ctx context.Context, input ports.CreatePromptInput) (*domain.Prompt, error)
	getFn       func(ctx context.Context, id string) (*domain.Prompt, error)
	updateFn    func(ctx context.Context, id string, input ports.UpdatePromptInput) error
	deleteFn    func(ctx context.Context, id string) error
	toggleFn    func(ctx context.Context, id string) error
	setFilterFn func(input ports.FilterInput)

	filter   domain.PromptFilter
	filtered []domain.Prompt
}

func (s *stubPromptService) Add(ctx context.Context, input ports.CreatePromptInput) (*domain.Prompt, error) {
	return s.addFn(ctx, input)
}

func (s *stubPromptService) Get(ctx context.Context, id string) (*domain.Prompt, error) {
	return s.getFn(ctx, id)
}

func (s *stubPromptService) Update(ctx context.Context, id string, input ports.UpdatePromptInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubPromptService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPromptService) ToggleFavorite(ctx context.Context, id string) error {
	return s.toggleFn(ctx, id)
}

func (s *stubPromptService) SetFilter(input ports.FilterInput) {
	if s.setFilterFn != nil {
		s.setFilterFn(input)
	}
}

func (s *stubPromptService) Filter() domain.PromptFilter { return s.filter }

func (s *stubPromptService) Filtered(ctx context.Context) []domain.Prompt { return s.filtered }

func (s *stubPromptService) Favorites(ctx context.Context) []domain.Prompt { return s.filtered }

func (s *stubPromptService) Recent(ctx context.Context) []domain.Prompt { return s.filtered }

func (s *stubPromptService) Load(ctx context.Context) error { return nil }

func newPromptTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPromptHandler_Create_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubPromptService{
		addFn: func(ctx context.Context, input ports.CreatePromptInput) (*domain.Prompt, error) {
			if input.Title != "Review checklist" || input.Category != domain.CategoryDevelopment {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Prompt{
				ID:        "42",
				Title:     input.Title,
				Content:   input.Content,
				Category:  input.Category,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodPost, "/v1/prompts",
		`{"title":"Review checklist","content":"Review this code","category":"development"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "42" {
		t.Fatalf("expected id 42, got %v", resp["id"])
	}
	// Absent tags still serialize as an empty array, not null.
	if tags, ok := resp["tags"].([]any); !ok || len(tags) != 0 {
		t.Fatalf("expected empty tags array, got %v", resp["tags"])
	}
}

func TestPromptHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubPromptService{
		addFn: func(ctx context.Context, input ports.CreatePromptInput) (*domain.Prompt, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodPost, "/v1/prompts",
		`{"content":"Review this code","category":"development"}`)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPromptHandler_List(t *testing.T) {
	stub := &stubPromptService{
		filtered: []domain.Prompt{
			{ID: "1", Title: "First"},
			{ID: "2", Title: "Second"},
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodGet, "/v1/prompts", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(2) {
		t.Fatalf("expected total 2, got %v", resp["total"])
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 prompts, got %v", resp["data"])
	}
}

func TestPromptHandler_Get_NotFound(t *testing.T) {
	stub := &stubPromptService{
		getFn: func(ctx context.Context, id string) (*domain.Prompt, error) {
			return nil, domain.ErrPromptNotFound
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodGet, "/v1/prompts/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPromptHandler_Update_ForwardsPartialInput(t *testing.T) {
	var got ports.UpdatePromptInput
	stub := &stubPromptService{
		updateFn: func(ctx context.Context, id string, input ports.UpdatePromptInput) error {
			if id != "42" {
				t.Fatalf("unexpected id %s", id)
			}
			got = input
			return nil
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodPatch, "/v1/prompts/42", `{"title":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if got.Title == nil || *got.Title != "Renamed" {
		t.Fatalf("expected title to be forwarded, got %+v", got.Title)
	}
	if got.Content != nil || got.Category != nil || got.Tags != nil || got.IsFavorite != nil {
		t.Fatalf("absent fields must stay nil: %+v", got)
	}
}

func TestPromptHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubPromptService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodDelete, "/v1/prompts/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "42" {
		t.Fatalf("expected delete for 42, got %q", deleted)
	}
}

func TestPromptHandler_ToggleFavorite(t *testing.T) {
	toggled := ""
	stub := &stubPromptService{
		toggleFn: func(ctx context.Context, id string) error {
			toggled = id
			return nil
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodPost, "/v1/prompts/42/favorite", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.ToggleFavorite(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if toggled != "42" {
		t.Fatalf("expected toggle for 42, got %q", toggled)
	}
}

func TestPromptHandler_SetFilter_ReturnsEffectiveSpec(t *testing.T) {
	stub := &stubPromptService{
		filter: domain.PromptFilter{
			Search:    "docker",
			Category:  domain.CategoryDevelopment,
			SortBy:    domain.SortByTitle,
			SortOrder: domain.SortAsc,
		},
		setFilterFn: func(input ports.FilterInput) {
			if input.Search == nil || *input.Search != "docker" {
				t.Fatalf("expected search to be forwarded, got %+v", input.Search)
			}
			if input.FavoritesOnly != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodPut, "/v1/prompts/filters",
		`{"search":"docker","sortBy":"title","sortOrder":"asc"}`)

	if err := handler.SetFilter(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["search"] != "docker" || resp["sortBy"] != "title" || resp["sortOrder"] != "asc" {
		t.Fatalf("unexpected filter payload: %+v", resp)
	}
}

func TestPromptHandler_SetFilter_RejectsUnknownSortField(t *testing.T) {
	stub := &stubPromptService{
		setFilterFn: func(input ports.FilterInput) {
			t.Fatalf("should not be called")
		},
	}
	handler := NewPromptHandler(stub)

	c, rec := newPromptTestContext(t, http.MethodPut, "/v1/prompts/filters", `{"sortBy":"rating"}`)

	_ = handler.SetFilter(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
