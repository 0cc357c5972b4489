package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(line int) Context {
	return Context{Filename: "test.md", LineNumber: line}
}

func TestSpellingRuleDetectsMisspelling(t *testing.T) {
	rule := NewSpellingRule(nil, false)

	issues := rule.Check("Mr. Smith said he would recieve the package.", testContext(3))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, "test.md", issue.File)
	assert.Equal(t, 3, issue.Line)
	assert.Equal(t, TypeSpelling, issue.Type)
	assert.Equal(t, SeverityHigh, issue.Severity)
	assert.Contains(t, issue.Message, `"recieve"`)
	assert.Contains(t, issue.Suggestion, `"receive"`)
}

func TestSpellingRuleOneIssuePerOccurrence(t *testing.T) {
	rule := NewSpellingRule(nil, false)

	issues := rule.Check("teh start and teh end", testContext(1))
	assert.Len(t, issues, 2)
}

func TestSpellingRuleCustomDictionary(t *testing.T) {
	rule := NewSpellingRule([]string{"recieve"}, false)

	issues := rule.Check("he would recieve the package", testContext(1))
	assert.Empty(t, issues)
}

func TestSpellingRuleSkipsCodeLines(t *testing.T) {
	rule := NewSpellingRule(nil, false)

	issues := rule.Check("var recieve = getValue()", testContext(1))
	assert.Empty(t, issues)
}

func TestSpellingRuleCleanLine(t *testing.T) {
	rule := NewSpellingRule(nil, false)

	issues := rule.Check("The package will arrive today.", testContext(1))
	assert.Empty(t, issues)
}

func TestSpellingRuleStrictMode(t *testing.T) {
	rule := NewSpellingRule(nil, true)

	// "packge" is not a known misspelling but is also not in the word list.
	issues := rule.Check("the packge will arrive", testContext(1))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"packge"`)
}

func TestSpellingRuleStrictModeSkipsShortWords(t *testing.T) {
	rule := NewSpellingRule(nil, true)

	issues := rule.Check("the fox ate it", testContext(1))
	assert.Empty(t, issues)
}
