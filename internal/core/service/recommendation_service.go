package service

import (
	"sort"
	"strings"

	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// Tool catalog categories.
const (
	toolCategoryAll            = "All"
	toolCategoryConversational = "Conversational"
	toolCategoryImage          = "Image Generation"
	toolCategoryProgramming    = "Programming"
	toolCategoryMarketing      = "Marketing"
	toolCategoryResearch       = "Research"
)

const recommendationLimit = 3

// categoryToolMap maps a prompt category to the tool categories worth
// recommending for it. Unknown prompt categories use fallbackToolCategories.
var categoryToolMap = map[domain.Category][]string{
	domain.CategoryDevelopment: {toolCategoryConversational, toolCategoryProgramming},
	domain.CategoryMarketing:   {toolCategoryMarketing, toolCategoryConversational, toolCategoryImage},
	domain.CategoryCreativity:  {toolCategoryImage, toolCategoryConversational},
	domain.CategoryAnalysis:    {toolCategoryConversational, toolCategoryResearch},
	domain.CategoryEducation:   {toolCategoryConversational, toolCategoryResearch},
	domain.CategoryBusiness:    {toolCategoryMarketing, toolCategoryConversational},
	domain.CategoryOther:       {toolCategoryConversational},
}

var fallbackToolCategories = []string{toolCategoryConversational}

// RecommendationService answers tool lookups against a fixed catalog.
type RecommendationService struct {
	catalog []domain.AITool
}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{catalog: defaultCatalog()}
}

// List returns catalog entries matching filter, rating-descending.
func (s *RecommendationService) List(filter ports.ToolFilter) []domain.AITool {
	search := strings.ToLower(filter.Search)

	out := make([]domain.AITool, 0, len(s.catalog))
	for _, tool := range s.catalog {
		if filter.Category != "" && filter.Category != toolCategoryAll && tool.Category != filter.Category {
			continue
		}
		if filter.Pricing != "" && tool.Pricing != filter.Pricing {
			continue
		}
		if filter.OnlyPopular && !tool.IsPopular {
			continue
		}
		if search != "" && !toolMatchesSearch(tool, search) {
			continue
		}
		out = append(out, tool)
	}
	sortByRating(out)
	return out
}

// RecommendFor returns up to three tools suited to a prompt category,
// rating-descending.
func (s *RecommendationService) RecommendFor(promptCategory domain.Category) []domain.AITool {
	relevant, ok := categoryToolMap[promptCategory]
	if !ok {
		relevant = fallbackToolCategories
	}

	out := make([]domain.AITool, 0, len(s.catalog))
	for _, tool := range s.catalog {
		for _, category := range relevant {
			if tool.Category == category {
				out = append(out, tool)
				break
			}
		}
	}
	sortByRating(out)
	if len(out) > recommendationLimit {
		out = out[:recommendationLimit]
	}
	return out
}

// Categories lists the tool catalog categories, "All" first.
func (s *RecommendationService) Categories() []string {
	return []string{
		toolCategoryAll,
		toolCategoryConversational,
		toolCategoryImage,
		toolCategoryProgramming,
		toolCategoryMarketing,
		toolCategoryResearch,
	}
}

func toolMatchesSearch(tool domain.AITool, search string) bool {
	if strings.Contains(strings.ToLower(tool.Name), search) ||
		strings.Contains(strings.ToLower(tool.Description), search) {
		return true
	}
	for _, feature := range tool.Features {
		if strings.Contains(strings.ToLower(feature), search) {
			return true
		}
	}
	return false
}

func sortByRating(tools []domain.AITool) {
	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Rating > tools[j].Rating
	})
}

// defaultCatalog is the fixed tool catalog. Ratings drive the ranking in both
// List and RecommendFor.
func defaultCatalog() []domain.AITool {
	return []domain.AITool{
		{
			ID:          "1",
			Name:        "ChatGPT",
			Description: "OpenAI's conversational AI for text generation, code and analysis.",
			Category:    toolCategoryConversational,
			Website:     "https://chat.openai.com",
			Features:    []string{"Text generation", "Programming", "Analysis", "Translation", "Creativity"},
			Pricing:     domain.PricingFreemium,
			BestFor:     []string{"development", "creativity", "analysis", "education"},
			Rating:      4.8,
			IsPopular:   true,
		},
		{
			ID:          "2",
			Name:        "Claude",
			Description: "Anthropic's AI focused on helpful, harmless and honest conversations.",
			Category:    toolCategoryConversational,
			Website:     "https://claude.ai",
			Features:    []string{"Document analysis", "Programming", "Writing", "Research"},
			Pricing:     domain.PricingFreemium,
			BestFor:     []string{"analysis", "development", "education"},
			Rating:      4.7,
			IsPopular:   true,
		},
		{
			ID:          "3",
			Name:        "Gemini",
			Description: "Google's AI with advanced multimodal capabilities.",
			Category:    toolCategoryConversational,
			Website:     "https://gemini.google.com",
			Features:    []string{"Multimodal", "Google integration", "Image analysis", "Programming"},
			Pricing:     domain.PricingFreemium,
			BestFor:     []string{"analysis", "development", "creativity"},
			Rating:      4.6,
			IsPopular:   true,
		},
		{
			ID:          "4",
			Name:        "Midjourney",
			Description: "AI specialized in generating high quality artistic images.",
			Category:    toolCategoryImage,
			Website:     "https://midjourney.com",
			Features:    []string{"Digital art", "Illustrations", "Visual concepts", "Artistic styles"},
			Pricing:     domain.PricingPaid,
			BestFor:     []string{"creativity", "marketing"},
			Rating:      4.9,
			IsPopular:   true,
		},
		{
			ID:          "5",
			Name:        "DALL-E 3",
			Description: "OpenAI's image generator with high precision and creativity.",
			Category:    toolCategoryImage,
			Website:     "https://openai.com/dall-e-3",
			Features:    []string{"Image generation", "Photo editing", "Concept art"},
			Pricing:     domain.PricingPaid,
			BestFor:     []string{"creativity", "marketing"},
			Rating:      4.7,
			IsPopular:   false,
		},
		{
			ID:          "6",
			Name:        "GitHub Copilot",
			Description: "AI-powered programming assistant for developers.",
			Category:    toolCategoryProgramming,
			Website:     "https://github.com/features/copilot",
			Features:    []string{"Code completion", "Suggestions", "Documentation", "Tests"},
			Pricing:     domain.PricingPaid,
			BestFor:     []string{"development"},
			Rating:      4.5,
			IsPopular:   true,
		},
		{
			ID:          "7",
			Name:        "Jasper",
			Description: "AI specialized in marketing and commercial content creation.",
			Category:    toolCategoryMarketing,
			Website:     "https://jasper.ai",
			Features:    []string{"Marketing copy", "Blog posts", "Social media", "E-mail marketing"},
			Pricing:     domain.PricingPaid,
			BestFor:     []string{"marketing", "business"},
			Rating:      4.4,
			IsPopular:   false,
		},
		{
			ID:          "8",
			Name:        "Perplexity",
			Description: "AI-powered search engine with precise, sourced answers.",
			Category:    toolCategoryResearch,
			Website:     "https://perplexity.ai",
			Features:    []string{"Smart search", "Citations", "Data analysis", "Summaries"},
			Pricing:     domain.PricingFreemium,
			BestFor:     []string{"education", "analysis"},
			Rating:      4.6,
			IsPopular:   false,
		},
	}
}
