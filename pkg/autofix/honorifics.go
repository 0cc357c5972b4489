package autofix

import (
	"regexp"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// honorificFixPattern removes an honorific token and one following
// whitespace run, case-insensitively.
var honorificFixPattern = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr)\.\s*`)

// HonorificsStrategy strips honorific tokens from a line.
type HonorificsStrategy struct{}

// NewHonorificsStrategy creates an honorifics fix strategy.
func NewHonorificsStrategy() *HonorificsStrategy {
	return &HonorificsStrategy{}
}

func (s *HonorificsStrategy) Type() rules.RuleType {
	return rules.TypeHonorifics
}

func (s *HonorificsStrategy) CanFix(issue rules.Issue) bool {
	return issue.Type == rules.TypeHonorifics
}

func (s *HonorificsStrategy) Apply(line string, issue rules.Issue) (string, error) {
	return honorificFixPattern.ReplaceAllString(line, ""), nil
}
