package rules

import (
	"fmt"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
)

// PlaceholderRule flags placeholder text (lorem ipsum, TODO markers,
// template expressions) left in content. Placeholder issues are never
// auto-fixed: replacing them requires a human decision.
type PlaceholderRule struct{}

// NewPlaceholderRule creates a placeholder rule.
func NewPlaceholderRule() *PlaceholderRule {
	return &PlaceholderRule{}
}

func (r *PlaceholderRule) Name() string       { return "placeholder" }
func (r *PlaceholderRule) Type() RuleType     { return TypePlaceholder }
func (r *PlaceholderRule) Severity() Severity { return SeverityHigh }

// Check emits one issue per matching pattern. Multiple pattern hits on one
// line yield multiple issues.
func (r *PlaceholderRule) Check(line string, ctx Context) []Issue {
	var issues []Issue
	for _, pattern := range dictionary.PlaceholderPatterns() {
		match := pattern.Pattern.FindString(line)
		if match == "" {
			continue
		}

		issues = append(issues, Issue{
			File:       ctx.Filename,
			Line:       ctx.LineNumber,
			Message:    fmt.Sprintf("Placeholder text found (%s): %q", pattern.Name, match),
			Severity:   r.Severity(),
			Type:       r.Type(),
			Suggestion: "Replace placeholder text with final content",
		})
	}
	return issues
}
