package autofix

import (
	"regexp"
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// lowercaseAfterBoundary matches a sentence boundary followed by a lowercase
// letter. The letter is the last byte of the match.
var lowercaseAfterBoundary = regexp.MustCompile(`[.!?]\s+[a-z]`)

// CapitalizationStrategy uppercases the first letter of each sentence on the
// line, including the first character of the line itself.
type CapitalizationStrategy struct{}

// NewCapitalizationStrategy creates a capitalization fix strategy.
func NewCapitalizationStrategy() *CapitalizationStrategy {
	return &CapitalizationStrategy{}
}

func (s *CapitalizationStrategy) Type() rules.RuleType {
	return rules.TypeCapitalization
}

func (s *CapitalizationStrategy) CanFix(issue rules.Issue) bool {
	return issue.Type == rules.TypeCapitalization
}

func (s *CapitalizationStrategy) Apply(line string, issue rules.Issue) (string, error) {
	fixed := lowercaseAfterBoundary.ReplaceAllStringFunc(line, func(match string) string {
		return match[:len(match)-1] + strings.ToUpper(match[len(match)-1:])
	})

	if len(fixed) > 0 && fixed[0] >= 'a' && fixed[0] <= 'z' {
		fixed = strings.ToUpper(fixed[:1]) + fixed[1:]
	}

	return fixed, nil
}
