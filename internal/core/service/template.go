package service

import (
	"strings"

	"github.com/promptvault/prompt-library/internal/core/domain"
)

// RenderTemplate substitutes named variables into a template. Every
// occurrence of the literal token [NAME] (variable name upper-cased, brackets
// literal) is replaced with the variable's value; tokens without a matching
// variable are left verbatim. Pure function, no state.
func RenderTemplate(template string, variables map[string]string) string {
	rendered := template
	for name, value := range variables {
		token := "[" + strings.ToUpper(name) + "]"
		rendered = strings.ReplaceAll(rendered, token, value)
	}
	return rendered
}

// BuiltinTemplates returns the read-only starter template catalog.
func BuiltinTemplates() []domain.PromptTemplate {
	return []domain.PromptTemplate{
		{
			ID:          "1",
			Name:        "Code Analysis",
			Description: "Template for code analysis and review",
			Content: "Analyze the following code and give feedback on: " +
				"1) Code quality, 2) Possible improvements, 3) Potential bugs, 4) Design patterns:\n\n[CODE]",
		},
		{
			ID:          "2",
			Name:        "Content Creation",
			Description: "Template for marketing content creation",
			Content: "Create content for [PLATFORM] about [TOPIC] that is: " +
				"1) Engaging and interesting, 2) SEO optimized, 3) Suited to the [AUDIENCE] audience, 4) Written in a [TONE] tone",
		},
		{
			ID:          "3",
			Name:        "Problem Solving",
			Description: "Template for structured problem solving",
			Content: "Help me solve the following problem: [PROBLEM]\n\n" +
				"Please provide: 1) Problem analysis, 2) Possible solutions, 3) Pros and cons of each solution, 4) Final recommendation",
		},
	}
}
