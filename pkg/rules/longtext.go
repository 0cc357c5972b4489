package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// maxLabelWords is the word limit for button and navigation labels.
const maxLabelWords = 3

var (
	// uiContextPattern decides whether a document contains UI button or
	// navigation markup at all; without it the rule does not apply.
	uiContextPattern = regexp.MustCompile(`(?i)(<button|button|btn|navbar|nav item|menu item|aria-label)`)

	// labelCandidatePattern extracts label-like text from a line: quoted
	// strings and tag bodies.
	labelCandidatePattern = regexp.MustCompile(`"([^"]+)"|>([^<>]+)<`)

	// lineUIPattern requires the line itself to mention UI markup so prose
	// paragraphs in a document that happens to mention buttons stay exempt.
	lineUIPattern = regexp.MustCompile(`(?i)(button|btn|nav|menu|label)`)
)

// LongTextRule flags button and navigation label text exceeding the word
// limit. It only applies when both the document and the line look like UI
// markup.
type LongTextRule struct{}

// NewLongTextRule creates a long-text rule.
func NewLongTextRule() *LongTextRule {
	return &LongTextRule{}
}

func (r *LongTextRule) Name() string       { return "long-text" }
func (r *LongTextRule) Type() RuleType     { return TypeLongText }
func (r *LongTextRule) Severity() Severity { return SeverityLow }

// Check extracts label candidates from the line and flags those exceeding
// the word limit.
func (r *LongTextRule) Check(line string, ctx Context) []Issue {
	if !uiContextPattern.MatchString(ctx.FullContent) || !lineUIPattern.MatchString(line) {
		return nil
	}

	var issues []Issue
	for _, match := range labelCandidatePattern.FindAllStringSubmatch(line, -1) {
		candidate := match[1]
		if candidate == "" {
			candidate = match[2]
		}
		candidate = strings.TrimSpace(candidate)

		words := strings.Fields(candidate)
		if len(words) <= maxLabelWords {
			continue
		}

		issues = append(issues, Issue{
			File:       ctx.Filename,
			Line:       ctx.LineNumber,
			Message:    fmt.Sprintf("Button/navigation text too long (%d words): %q", len(words), candidate),
			Severity:   r.Severity(),
			Type:       r.Type(),
			Suggestion: fmt.Sprintf("Keep button and navigation labels to %d words or fewer", maxLabelWords),
		})
	}
	return issues
}
