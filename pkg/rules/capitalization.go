package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// sentenceBoundaryPattern splits a line into sentence fragments.
var sentenceBoundaryPattern = regexp.MustCompile(`[.!?]\s+`)

// previewLength is the number of characters of the offending sentence shown
// in the issue message.
const previewLength = 30

// CapitalizationRule flags sentences that start with a lowercase letter.
type CapitalizationRule struct{}

// NewCapitalizationRule creates a capitalization rule.
func NewCapitalizationRule() *CapitalizationRule {
	return &CapitalizationRule{}
}

func (r *CapitalizationRule) Name() string       { return "capitalization" }
func (r *CapitalizationRule) Type() RuleType     { return TypeCapitalization }
func (r *CapitalizationRule) Severity() Severity { return SeverityLow }

// Check splits the line into sentences on `.!?` followed by whitespace and
// emits an issue for each fragment starting with a lowercase letter.
func (r *CapitalizationRule) Check(line string, ctx Context) []Issue {
	var issues []Issue
	for _, fragment := range sentenceBoundaryPattern.Split(line, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		first := []rune(fragment)[0]
		if !unicode.IsLower(first) || !unicode.IsLetter(first) {
			continue
		}

		preview := fragment
		if len(preview) > previewLength {
			preview = preview[:previewLength] + "..."
		}

		issues = append(issues, Issue{
			File:       ctx.Filename,
			Line:       ctx.LineNumber,
			Message:    fmt.Sprintf("Sentence should start with a capital letter: %q", preview),
			Severity:   r.Severity(),
			Type:       r.Type(),
			Suggestion: "Capitalize the first letter of each sentence",
		})
	}
	return issues
}
