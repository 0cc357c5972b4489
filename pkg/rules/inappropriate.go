package rules

import (
	"fmt"
	"regexp"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
)

// InappropriateRule flags casual words from a fixed denylist. It emits at
// most one issue per line, stopping after the first match.
type InappropriateRule struct {
	patterns []*regexp.Regexp
	words    []string
}

// NewInappropriateRule creates an inappropriate-content rule.
func NewInappropriateRule() *InappropriateRule {
	words := dictionary.CasualWords()
	patterns := make([]*regexp.Regexp, len(words))
	for i, word := range words {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return &InappropriateRule{patterns: patterns, words: words}
}

func (r *InappropriateRule) Name() string       { return "inappropriate" }
func (r *InappropriateRule) Type() RuleType     { return TypeInappropriate }
func (r *InappropriateRule) Severity() Severity { return SeverityMedium }

// Check returns an issue for the first denylisted word found on the line.
func (r *InappropriateRule) Check(line string, ctx Context) []Issue {
	for i, pattern := range r.patterns {
		if !pattern.MatchString(line) {
			continue
		}

		return []Issue{{
			File:       ctx.Filename,
			Line:       ctx.LineNumber,
			Message:    fmt.Sprintf("Casual wording: %q is not appropriate for published content", r.words[i]),
			Severity:   r.Severity(),
			Type:       r.Type(),
			Suggestion: "Use more formal wording",
		}}
	}
	return nil
}
