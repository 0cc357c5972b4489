package autofix

import (
	"regexp"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// SpellingStrategy replaces a misspelled word with its correction. The
// misspelled word comes from the quoted substring of the issue message, the
// correction from the quoted substring of the suggestion. Replacement is
// case-sensitive and word-boundary anchored so fixing "teh" never touches
// "theater".
type SpellingStrategy struct{}

// NewSpellingStrategy creates a spelling fix strategy.
func NewSpellingStrategy() *SpellingStrategy {
	return &SpellingStrategy{}
}

func (s *SpellingStrategy) Type() rules.RuleType {
	return rules.TypeSpelling
}

func (s *SpellingStrategy) CanFix(issue rules.Issue) bool {
	return issue.Type == rules.TypeSpelling && issue.Suggestion != ""
}

func (s *SpellingStrategy) Apply(line string, issue rules.Issue) (string, error) {
	word, err := extractQuoted(issue.Message)
	if err != nil {
		return line, err
	}
	correction, err := extractQuoted(issue.Suggestion)
	if err != nil {
		return line, err
	}

	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return line, err
	}
	return pattern.ReplaceAllString(line, correction), nil
}
