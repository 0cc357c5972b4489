package autofix

import (
	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// GrammarStrategy applies the fixed table of whole-phrase grammar
// replacements to the line, case-insensitively. Corrected phrases no longer
// match their patterns, so reapplying is a no-op.
type GrammarStrategy struct{}

// NewGrammarStrategy creates a grammar fix strategy.
func NewGrammarStrategy() *GrammarStrategy {
	return &GrammarStrategy{}
}

func (s *GrammarStrategy) Type() rules.RuleType {
	return rules.TypeGrammar
}

func (s *GrammarStrategy) CanFix(issue rules.Issue) bool {
	return issue.Type == rules.TypeGrammar
}

func (s *GrammarStrategy) Apply(line string, issue rules.Issue) (string, error) {
	fixed := line
	for _, pattern := range dictionary.GrammarPatterns() {
		fixed = pattern.Pattern.ReplaceAllString(fixed, pattern.Correction)
	}
	return fixed, nil
}
