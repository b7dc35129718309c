package service

import (
	"sort"
	"testing"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

func TestRecommendationService_RecommendFor_ReturnsTopThreeByRating(t *testing.T) {
	svc := NewRecommendationService()

	got := svc.RecommendFor(domain.CategoryCreativity)
	if len(got) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(got))
	}
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Rating > got[j].Rating }) {
		t.Fatalf("recommendations not rating-descending: %+v", got)
	}
	// Creativity maps to image generation + conversational; the highest rated
	// image tool leads the list.
	if got[0].Name != "Midjourney" {
		t.Fatalf("expected Midjourney first, got %s", got[0].Name)
	}
}

func TestRecommendationService_RecommendFor_DevelopmentIncludesProgrammingTools(t *testing.T) {
	svc := NewRecommendationService()

	got := svc.RecommendFor(domain.CategoryDevelopment)
	for _, tool := range got {
		if tool.Category != "Conversational" && tool.Category != "Programming" {
			t.Fatalf("unexpected category %q for a development prompt", tool.Category)
		}
	}
}

func TestRecommendationService_RecommendFor_UnknownCategoryFallsBack(t *testing.T) {
	svc := NewRecommendationService()

	got := svc.RecommendFor(domain.Category("does-not-exist"))
	if len(got) == 0 {
		t.Fatal("fallback set must not be empty")
	}
	for _, tool := range got {
		if tool.Category != "Conversational" {
			t.Fatalf("fallback must stay conversational, got %q", tool.Category)
		}
	}
}

func TestRecommendationService_List_AllAndEmptyCategoryMatchEverything(t *testing.T) {
	svc := NewRecommendationService()

	all := svc.List(ports.ToolFilter{Category: "All"})
	unset := svc.List(ports.ToolFilter{})
	if len(all) != len(unset) || len(all) == 0 {
		t.Fatalf("expected identical full listings, got %d and %d", len(all), len(unset))
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Rating > all[j].Rating }) {
		t.Fatal("listing not rating-descending")
	}
}

func TestRecommendationService_Categories_AllFirst(t *testing.T) {
	svc := NewRecommendationService()

	got := svc.Categories()
	if len(got) == 0 || got[0] != "All" {
		t.Fatalf(`expected "All" first, got %v`, got)
	}
}

func TestRecommendationService_List_Filters(t *testing.T) {
	svc := NewRecommendationService()

	paid := svc.List(ports.ToolFilter{Pricing: domain.PricingPaid})
	if len(paid) == 0 {
		t.Fatal("expected paid tools")
	}
	for _, tool := range paid {
		if tool.Pricing != domain.PricingPaid {
			t.Fatalf("pricing filter leaked %q", tool.Pricing)
		}
	}

	popular := svc.List(ports.ToolFilter{OnlyPopular: true})
	for _, tool := range popular {
		if !tool.IsPopular {
			t.Fatalf("popular filter leaked %s", tool.Name)
		}
	}

	// Search is case-insensitive and also matches features.
	byFeature := svc.List(ports.ToolFilter{Search: "CITATIONS"})
	if len(byFeature) != 1 || byFeature[0].Name != "Perplexity" {
		t.Fatalf("feature search: expected exactly Perplexity, got %+v", byFeature)
	}
}
