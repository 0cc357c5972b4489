package rules

import (
	"fmt"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
)

// GrammarRule detects common grammar mistakes from a fixed table of
// (pattern, correction, message) triples.
type GrammarRule struct{}

// NewGrammarRule creates a grammar rule.
func NewGrammarRule() *GrammarRule {
	return &GrammarRule{}
}

func (r *GrammarRule) Name() string       { return "grammar" }
func (r *GrammarRule) Type() RuleType     { return TypeGrammar }
func (r *GrammarRule) Severity() Severity { return SeverityMedium }

// Check emits one issue per pattern match occurrence.
func (r *GrammarRule) Check(line string, ctx Context) []Issue {
	var issues []Issue
	for _, pattern := range dictionary.GrammarPatterns() {
		for range pattern.Pattern.FindAllString(line, -1) {
			issues = append(issues, Issue{
				File:       ctx.Filename,
				Line:       ctx.LineNumber,
				Message:    fmt.Sprintf("Grammar: %s", pattern.Message),
				Severity:   r.Severity(),
				Type:       r.Type(),
				Suggestion: fmt.Sprintf("Use %q", pattern.Correction),
			})
		}
	}
	return issues
}
