package rules

import (
	"fmt"
	"regexp"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
)

// PluralConsistencyRule compares document-wide usage counts of fixed
// singular/plural word pairs. The check is document-global, so it fires at
// most once per document (on the first line) rather than re-emitting the
// same finding for every line.
type PluralConsistencyRule struct{}

// NewPluralConsistencyRule creates a plural-consistency rule.
func NewPluralConsistencyRule() *PluralConsistencyRule {
	return &PluralConsistencyRule{}
}

func (r *PluralConsistencyRule) Name() string       { return "plural-consistency" }
func (r *PluralConsistencyRule) Type() RuleType     { return TypePluralConsistency }
func (r *PluralConsistencyRule) Severity() Severity { return SeverityMedium }

// Check counts whole-word occurrences of each pair across the full document
// and flags pairs whose counts differ by more than the threshold. Both forms
// must appear: a document that uses only one form is consistent.
func (r *PluralConsistencyRule) Check(line string, ctx Context) []Issue {
	if ctx.LineNumber != 1 {
		return nil
	}

	var issues []Issue
	for _, pair := range dictionary.PluralPairs() {
		singular := countWord(ctx.FullContent, pair.Singular)
		plural := countWord(ctx.FullContent, pair.Plural)
		if singular == 0 || plural == 0 {
			continue
		}

		diff := singular - plural
		if diff < 0 {
			diff = -diff
		}
		if diff <= dictionary.PluralDifferenceThreshold {
			continue
		}

		issues = append(issues, Issue{
			File:       ctx.Filename,
			Line:       ctx.LineNumber,
			Message:    fmt.Sprintf("Inconsistent singular/plural usage: %q (%d) vs %q (%d)", pair.Singular, singular, pair.Plural, plural),
			Severity:   r.Severity(),
			Type:       r.Type(),
			Suggestion: fmt.Sprintf("Use either %q or %q consistently", pair.Singular, pair.Plural),
		})
	}
	return issues
}

// countWord counts case-insensitive whole-word occurrences of word in
// content.
func countWord(content, word string) int {
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return len(pattern.FindAllString(content, -1))
}
