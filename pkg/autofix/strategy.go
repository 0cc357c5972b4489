package autofix

import (
	"fmt"
	"regexp"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// Strategy is a named corrector for one issue type. Apply receives the
// single line the issue was detected on; the engine owns line indexing.
//
// Strategies must be idempotent: applying one to already-fixed text must not
// alter it further, which holds as long as corrected text no longer matches
// the original detection pattern.
type Strategy interface {
	Type() rules.RuleType
	CanFix(issue rules.Issue) bool
	Apply(line string, issue rules.Issue) (string, error)
}

var quotedPattern = regexp.MustCompile(`"([^"]+)"`)

// extractQuoted returns the first double-quoted substring of s. Issue
// messages and suggestions carry the flagged word and its correction in
// quotes; a missing quote is a malformed issue and reported as an error.
func extractQuoted(s string) (string, error) {
	match := quotedPattern.FindStringSubmatch(s)
	if match == nil {
		return "", fmt.Errorf("no quoted text in %q", s)
	}
	return match[1], nil
}
