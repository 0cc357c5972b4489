package rules

import (
	"fmt"
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
)

// HonorificsRule flags honorific tokens (Mr., Mrs., Dr., ...) which style
// policy forbids in published content.
type HonorificsRule struct{}

// NewHonorificsRule creates an honorifics rule.
func NewHonorificsRule() *HonorificsRule {
	return &HonorificsRule{}
}

func (r *HonorificsRule) Name() string       { return "honorifics" }
func (r *HonorificsRule) Type() RuleType     { return TypeHonorifics }
func (r *HonorificsRule) Severity() Severity { return SeverityCritical }

// Check emits exactly one issue per line listing all matched tokens, not one
// issue per occurrence.
func (r *HonorificsRule) Check(line string, ctx Context) []Issue {
	matches := dictionary.HonorificPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return nil
	}

	return []Issue{{
		File:       ctx.Filename,
		Line:       ctx.LineNumber,
		Message:    fmt.Sprintf("Avoid honorifics: %s", strings.Join(matches, ", ")),
		Severity:   r.Severity(),
		Type:       r.Type(),
		Suggestion: "Remove honorifics and refer to people by their full name",
	}}
}
