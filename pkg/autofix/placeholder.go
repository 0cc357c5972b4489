package autofix

import (
	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// PlaceholderStrategy never fixes anything: placeholder text requires a
// human decision and must not be silently deleted. CanFix always returns
// false so the engine skips placeholder issues.
type PlaceholderStrategy struct{}

// NewPlaceholderStrategy creates the (non-fixing) placeholder strategy.
func NewPlaceholderStrategy() *PlaceholderStrategy {
	return &PlaceholderStrategy{}
}

func (s *PlaceholderStrategy) Type() rules.RuleType {
	return rules.TypePlaceholder
}

func (s *PlaceholderStrategy) CanFix(issue rules.Issue) bool {
	return false
}

func (s *PlaceholderStrategy) Apply(line string, issue rules.Issue) (string, error) {
	return line, nil
}
