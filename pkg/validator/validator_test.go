package validator

import (
	"testing"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanContent(t *testing.T) {
	v := New(Options{})

	issues := v.Validate("The package will arrive today.", "clean.md")
	assert.Empty(t, issues)
}

func TestValidateEmptyContent(t *testing.T) {
	v := New(Options{})

	issues := v.Validate("", "empty.md")
	assert.Empty(t, issues)
	assert.NotNil(t, issues)
}

func TestValidateHonorificAndMisspelling(t *testing.T) {
	v := New(Options{})

	issues := v.Validate("Mr. Smith said he would recieve the package.", "letter.md")

	var honorific, spelling *rules.Issue
	for i := range issues {
		switch issues[i].Type {
		case rules.TypeHonorifics:
			honorific = &issues[i]
		case rules.TypeSpelling:
			spelling = &issues[i]
		}
	}

	require.NotNil(t, honorific)
	assert.Equal(t, rules.SeverityCritical, honorific.Severity)
	assert.Contains(t, honorific.Message, "Mr.")

	require.NotNil(t, spelling)
	assert.Equal(t, rules.SeverityHigh, spelling.Severity)
	assert.Contains(t, spelling.Message, `"recieve"`)
	assert.Contains(t, spelling.Suggestion, `"receive"`)
}

func TestValidateGrammarSuggestion(t *testing.T) {
	v := New(Options{})

	issues := v.Validate("he said he should of gone", "note.md")

	var grammar *rules.Issue
	for i := range issues {
		if issues[i].Type == rules.TypeGrammar {
			grammar = &issues[i]
		}
	}
	require.NotNil(t, grammar)
	assert.Contains(t, grammar.Suggestion, "should have")
}

func TestValidateLowercaseTodoNotFlagged(t *testing.T) {
	v := New(Options{})

	issues := v.Validate("todo: finish this", "note.md")
	for _, issue := range issues {
		assert.NotEqual(t, rules.TypePlaceholder, issue.Type)
	}
}

func TestValidateIssuesOrderedByLine(t *testing.T) {
	v := New(Options{})

	content := "Clean first line here.\n" + // line 1
		"he used teh wrong word\n" + // line 2
		"Clean third line here.\n" + // line 3
		"Clean fourth line here.\n" + // line 4
		"Mr. Smith will attend.\n" // line 5

	issues := v.Validate(content, "doc.md")
	require.NotEmpty(t, issues)

	lines := make([]int, len(issues))
	for i, issue := range issues {
		lines[i] = issue.Line
	}
	for i := 1; i < len(lines); i++ {
		assert.GreaterOrEqual(t, lines[i], lines[i-1], "issues must be ordered by ascending line")
	}
	assert.Equal(t, 2, issues[0].Line)
}

func TestValidateRuleOrderWithinLine(t *testing.T) {
	v := New(Options{})

	// One line with both a misspelling and an honorific: spelling is
	// registered before honorifics, so its issue comes first.
	issues := v.Validate("Mr. Smith would recieve it.", "doc.md")
	require.GreaterOrEqual(t, len(issues), 2)
	assert.Equal(t, rules.TypeSpelling, issues[0].Type)
	assert.Equal(t, rules.TypeHonorifics, issues[1].Type)
}

func TestValidateEnabledTypes(t *testing.T) {
	v := New(Options{EnabledTypes: []rules.RuleType{rules.TypeHonorifics}})

	issues := v.Validate("Mr. Smith would recieve it.", "doc.md")
	require.Len(t, issues, 1)
	assert.Equal(t, rules.TypeHonorifics, issues[0].Type)
}

type bannedWordRule struct{}

func (r *bannedWordRule) Name() string              { return "banned-word" }
func (r *bannedWordRule) Type() rules.RuleType      { return rules.RuleType("banned-word") }
func (r *bannedWordRule) Severity() rules.Severity  { return rules.SeverityLow }
func (r *bannedWordRule) Check(line string, ctx rules.Context) []rules.Issue {
	if line == "forbidden" {
		return []rules.Issue{{
			File:     ctx.Filename,
			Line:     ctx.LineNumber,
			Message:  "banned word used",
			Severity: r.Severity(),
			Type:     r.Type(),
		}}
	}
	return nil
}

func TestValidateExtraRules(t *testing.T) {
	v := New(Options{ExtraRules: []rules.Rule{&bannedWordRule{}}})

	issues := v.Validate("forbidden", "doc.md")
	require.Len(t, issues, 1)
	assert.Equal(t, "banned word used", issues[0].Message)
}

func TestHasBlockingIssues(t *testing.T) {
	assert.False(t, HasBlockingIssues(nil))
	assert.False(t, HasBlockingIssues([]rules.Issue{{Severity: rules.SeverityLow}}))
	assert.True(t, HasBlockingIssues([]rules.Issue{{Severity: rules.SeverityLow}, {Severity: rules.SeverityCritical}}))
	assert.True(t, HasBlockingIssues([]rules.Issue{{Severity: rules.SeverityHigh}}))
}

func TestRuleNames(t *testing.T) {
	v := New(Options{})
	assert.Equal(t, []string{
		"spelling", "honorifics", "placeholder", "grammar",
		"capitalization", "long-text", "plural-consistency", "inappropriate",
	}, v.RuleNames())
}
