package autofix

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// Failure records one issue the engine could not fix.
type Failure struct {
	Issue  rules.Issue `json:"issue"`
	Reason string      `json:"reason"`
}

// Result summarizes a fix batch.
type Result struct {
	Fixed    map[rules.RuleType]int `json:"fixed"`
	Skipped  int                    `json:"skipped"`
	Failures []Failure              `json:"failures,omitempty"`
}

// Total returns the number of issues fixed across all types.
func (r *Result) Total() int {
	total := 0
	for _, count := range r.Fixed {
		total += count
	}
	return total
}

// Engine holds an ordered collection of fix strategies and applies them
// across a document.
type Engine struct {
	strategies []Strategy
}

// NewEngine creates an engine with the built-in strategies in fixed order.
func NewEngine() *Engine {
	return &Engine{
		strategies: []Strategy{
			NewSpellingStrategy(),
			NewHonorificsStrategy(),
			NewCapitalizationStrategy(),
			NewGrammarStrategy(),
			NewPlaceholderStrategy(),
		},
	}
}

// ApplyFixes applies the first matching strategy to each issue and returns
// the fixed content with a summary of what happened.
//
// Issues are processed in descending line order: fixes mutate single lines
// by index, so fixing a later line first keeps every earlier line number
// valid for the rest of the batch (the same reason patch hunks are applied
// in reverse). Issues on the same line are applied in the order given.
//
// An issue with no matching strategy is skipped silently; a strategy error
// skips that one issue and the batch continues. Partial results are always
// returned.
func (e *Engine) ApplyFixes(content string, issues []rules.Issue) (string, *Result) {
	result := &Result{Fixed: make(map[rules.RuleType]int)}
	lines := strings.Split(content, "\n")

	ordered := make([]rules.Issue, len(issues))
	copy(ordered, issues)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Line > ordered[j].Line
	})

	for _, issue := range ordered {
		strategy := e.strategyFor(issue)
		if strategy == nil {
			result.Skipped++
			continue
		}

		if issue.Line < 1 || issue.Line > len(lines) {
			reason := fmt.Sprintf("line %d out of range (document has %d lines)", issue.Line, len(lines))
			log.Printf("[AutoFix] %s", reason)
			result.Failures = append(result.Failures, Failure{Issue: issue, Reason: reason})
			continue
		}

		fixedLine, err := strategy.Apply(lines[issue.Line-1], issue)
		if err != nil {
			log.Printf("[AutoFix] Skipping %s issue on line %d: %v", issue.Type, issue.Line, err)
			result.Failures = append(result.Failures, Failure{Issue: issue, Reason: err.Error()})
			continue
		}

		lines[issue.Line-1] = fixedLine
		result.Fixed[issue.Type]++
	}

	return strings.Join(lines, "\n"), result
}

// strategyFor returns the first registered strategy whose CanFix accepts the
// issue, or nil when none does.
func (e *Engine) strategyFor(issue rules.Issue) Strategy {
	for _, strategy := range e.strategies {
		if strategy.CanFix(issue) {
			return strategy
		}
	}
	return nil
}
