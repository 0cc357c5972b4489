package validator

import (
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// Options configures a Validator. The zero value enables every built-in rule
// with no custom words and strict spelling off.
type Options struct {
	// EnabledTypes restricts which built-in rule types run. Nil or empty
	// enables all of them.
	EnabledTypes []rules.RuleType

	// CustomWords are never flagged by the spelling rule.
	CustomWords []string

	// StrictSpelling also flags words unknown to the embedded word list.
	StrictSpelling bool

	// ExtraRules are appended after the built-in rules and run in the order
	// given.
	ExtraRules []rules.Rule
}

// Validator applies an ordered, immutable list of rules to every line of a
// document. Construct one with New; the rule list never changes afterwards,
// so a Validator is safe for concurrent use.
type Validator struct {
	rules []rules.Rule
}

// New builds a Validator. Built-in rules run in fixed registration order:
// spelling, honorifics, placeholder, grammar, capitalization, long-text,
// plural-consistency, inappropriate. Callers add custom rules through
// Options.ExtraRules rather than mutating a shared registry.
func New(opts Options) *Validator {
	builtins := []rules.Rule{
		rules.NewSpellingRule(opts.CustomWords, opts.StrictSpelling),
		rules.NewHonorificsRule(),
		rules.NewPlaceholderRule(),
		rules.NewGrammarRule(),
		rules.NewCapitalizationRule(),
		rules.NewLongTextRule(),
		rules.NewPluralConsistencyRule(),
		rules.NewInappropriateRule(),
	}

	var enabled []rules.Rule
	if len(opts.EnabledTypes) == 0 {
		enabled = builtins
	} else {
		wanted := make(map[rules.RuleType]bool, len(opts.EnabledTypes))
		for _, ruleType := range opts.EnabledTypes {
			wanted[ruleType] = true
		}
		for _, rule := range builtins {
			if wanted[rule.Type()] {
				enabled = append(enabled, rule)
			}
		}
	}

	enabled = append(enabled, opts.ExtraRules...)

	return &Validator{rules: enabled}
}

// RuleNames returns the names of the rules this Validator runs, in order.
func (v *Validator) RuleNames() []string {
	names := make([]string, len(v.rules))
	for i, rule := range v.rules {
		names[i] = rule.Name()
	}
	return names
}

// Validate runs every enabled rule against every line of content and returns
// the aggregated issues. The outer loop is the line and the inner loop is the
// rule, so issues are ordered by ascending line number, and within a line by
// rule registration order. Callers may rely on that ordering.
//
// Validate never fails: content with no findings yields an empty slice.
func (v *Validator) Validate(content, filename string) []rules.Issue {
	issues := []rules.Issue{}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		ctx := rules.Context{
			Filename:    filename,
			LineNumber:  i + 1,
			FullContent: content,
		}
		for _, rule := range v.rules {
			issues = append(issues, rule.Check(line, ctx)...)
		}
	}

	return issues
}

// HasBlockingIssues reports whether any issue severity should fail the batch
// under the merge-blocking policy (critical or high).
func HasBlockingIssues(issues []rules.Issue) bool {
	for _, issue := range issues {
		if rules.IsBlocking(issue.Severity) {
			return true
		}
	}
	return false
}
