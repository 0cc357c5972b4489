package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
)

// wordPattern tokenizes a line into alphabetic words.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// SpellingRule detects known misspellings in prose lines. Lines that look
// like code are skipped entirely (see LooksLikeCode). In strict mode, words
// absent from the embedded word list are also flagged, with suggestions from
// the fuzzy model.
type SpellingRule struct {
	customWords map[string]bool
	strict      bool
}

// NewSpellingRule creates a spelling rule. Words in customWords are treated
// as correctly spelled and never flagged.
func NewSpellingRule(customWords []string, strict bool) *SpellingRule {
	allowed := make(map[string]bool, len(customWords))
	for _, word := range customWords {
		allowed[strings.ToLower(word)] = true
	}
	return &SpellingRule{customWords: allowed, strict: strict}
}

func (r *SpellingRule) Name() string       { return "spelling" }
func (r *SpellingRule) Type() RuleType     { return TypeSpelling }
func (r *SpellingRule) Severity() Severity { return SeverityHigh }

// Check emits one issue per misspelled word occurrence. Repeated typos on
// the same line each produce an issue.
func (r *SpellingRule) Check(line string, ctx Context) []Issue {
	if LooksLikeCode(line) {
		return nil
	}

	var issues []Issue
	for _, word := range wordPattern.FindAllString(line, -1) {
		if r.customWords[strings.ToLower(word)] {
			continue
		}

		if correction, ok := dictionary.Correction(word); ok {
			issues = append(issues, Issue{
				File:       ctx.Filename,
				Line:       ctx.LineNumber,
				Message:    fmt.Sprintf("Misspelled word: %q", word),
				Severity:   r.Severity(),
				Type:       r.Type(),
				Suggestion: fmt.Sprintf("Did you mean %q?", correction),
			})
			continue
		}

		if r.strict && len(word) > 3 && !dictionary.IsKnownWord(word) {
			issue := Issue{
				File:     ctx.Filename,
				Line:     ctx.LineNumber,
				Message:  fmt.Sprintf("Unknown word: %q", word),
				Severity: r.Severity(),
				Type:     r.Type(),
			}
			if suggestions := dictionary.Suggest(word); len(suggestions) > 0 {
				issue.Suggestion = fmt.Sprintf("Did you mean %q?", suggestions[0])
			}
			issues = append(issues, issue)
		}
	}

	return issues
}
