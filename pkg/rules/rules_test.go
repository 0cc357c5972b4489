package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHonorificsRuleOneIssuePerLine(t *testing.T) {
	rule := NewHonorificsRule()

	issues := rule.Check("Mr. Smith met Dr. Jones yesterday.", testContext(2))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, TypeHonorifics, issue.Type)
	assert.Equal(t, SeverityCritical, issue.Severity)
	assert.Contains(t, issue.Message, "Mr.")
	assert.Contains(t, issue.Message, "Dr.")
	assert.Equal(t, 2, issue.Line)
}

func TestHonorificsRuleCaseInsensitive(t *testing.T) {
	rule := NewHonorificsRule()

	issues := rule.Check("ask mr. smith about it", testContext(1))
	assert.Len(t, issues, 1)
}

func TestHonorificsRuleNoMatch(t *testing.T) {
	rule := NewHonorificsRule()

	issues := rule.Check("Smith said the doctor would call.", testContext(1))
	assert.Empty(t, issues)
}

func TestPlaceholderRuleUppercaseMarkersOnly(t *testing.T) {
	rule := NewPlaceholderRule()

	issues := rule.Check("TODO: finish this section", testContext(1))
	require.Len(t, issues, 1)
	assert.Equal(t, TypePlaceholder, issues[0].Type)
	assert.Equal(t, SeverityHigh, issues[0].Severity)

	// Lowercase "todo" in prose is not a work marker.
	issues = rule.Check("todo: finish this section", testContext(1))
	assert.Empty(t, issues)
}

func TestPlaceholderRuleOneIssuePerPattern(t *testing.T) {
	rule := NewPlaceholderRule()

	issues := rule.Check("TODO replace this lorem ipsum text", testContext(1))
	assert.Len(t, issues, 2)
}

func TestPlaceholderRuleTemplateExpression(t *testing.T) {
	rule := NewPlaceholderRule()

	issues := rule.Check("Welcome {{customer_name}} to the service", testContext(1))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "{{customer_name}}")
}

func TestPlaceholderRuleCaseInsensitivePatterns(t *testing.T) {
	rule := NewPlaceholderRule()

	issues := rule.Check("Some Lorem Ipsum filler", testContext(1))
	assert.Len(t, issues, 1)

	issues = rule.Check("This is a PLACEHOLDER value", testContext(1))
	assert.Len(t, issues, 1)
}

func TestGrammarRuleDetectsPhrase(t *testing.T) {
	rule := NewGrammarRule()

	issues := rule.Check("he said he should of gone", testContext(4))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, TypeGrammar, issue.Type)
	assert.Equal(t, SeverityMedium, issue.Severity)
	assert.Contains(t, issue.Suggestion, "should have")
}

func TestGrammarRuleOneIssuePerMatch(t *testing.T) {
	rule := NewGrammarRule()

	issues := rule.Check("it could of worked and it would of helped", testContext(1))
	assert.Len(t, issues, 2)
}

func TestCapitalizationRuleFlagsLowercaseSentence(t *testing.T) {
	rule := NewCapitalizationRule()

	issues := rule.Check("this sentence needs capitalization.", testContext(1))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, TypeCapitalization, issue.Type)
	assert.Equal(t, SeverityLow, issue.Severity)
}

func TestCapitalizationRuleTruncatesPreview(t *testing.T) {
	rule := NewCapitalizationRule()

	long := "this is a very long sentence that should be truncated in the preview text."
	issues := rule.Check(long, testContext(1))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, long[:30]+"...")
}

func TestCapitalizationRuleMidLineSentences(t *testing.T) {
	rule := NewCapitalizationRule()

	issues := rule.Check("First part is fine. second part is not.", testContext(1))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "second part")
}

func TestCapitalizationRuleCleanLine(t *testing.T) {
	rule := NewCapitalizationRule()

	issues := rule.Check("All good here. And here too.", testContext(1))
	assert.Empty(t, issues)
}

func TestLongTextRuleFlagsLongLabels(t *testing.T) {
	rule := NewLongTextRule()

	content := "<nav class=\"menu\">\n  <button>Click here to start the process</button>\n</nav>"
	ctx := Context{Filename: "page.html", LineNumber: 2, FullContent: content}

	issues := rule.Check("  <button>Click here to start the process</button>", ctx)
	require.Len(t, issues, 1)
	assert.Equal(t, TypeLongText, issues[0].Type)
	assert.Contains(t, issues[0].Message, "Click here to start the process")
}

func TestLongTextRuleShortLabelsPass(t *testing.T) {
	rule := NewLongTextRule()

	content := "<button>Save draft</button>"
	ctx := Context{Filename: "page.html", LineNumber: 1, FullContent: content}

	issues := rule.Check(content, ctx)
	assert.Empty(t, issues)
}

func TestLongTextRuleRequiresUIContext(t *testing.T) {
	rule := NewLongTextRule()

	content := "A plain document about many long sentences with no markup at all."
	ctx := Context{Filename: "doc.md", LineNumber: 1, FullContent: content}

	issues := rule.Check(content, ctx)
	assert.Empty(t, issues)
}

func TestPluralConsistencyFiresOncePerDocument(t *testing.T) {
	rule := NewPluralConsistencyRule()

	lines := []string{
		"One file here.",
		"files files files files files files files files",
	}
	content := strings.Join(lines, "\n")

	// Fires on the first line only, not once per line.
	issues := rule.Check(lines[0], Context{Filename: "doc.md", LineNumber: 1, FullContent: content})
	require.Len(t, issues, 1)
	assert.Equal(t, TypePluralConsistency, issues[0].Type)
	assert.Equal(t, 1, issues[0].Line)

	issues = rule.Check(lines[1], Context{Filename: "doc.md", LineNumber: 2, FullContent: content})
	assert.Empty(t, issues)
}

func TestPluralConsistencyRequiresBothForms(t *testing.T) {
	rule := NewPluralConsistencyRule()

	// Only the plural form appears; usage is consistent.
	content := "files files files files files files files files"
	issues := rule.Check(content, Context{Filename: "doc.md", LineNumber: 1, FullContent: content})
	assert.Empty(t, issues)
}

func TestPluralConsistencyWithinThreshold(t *testing.T) {
	rule := NewPluralConsistencyRule()

	content := "The file and the files."
	issues := rule.Check(content, Context{Filename: "doc.md", LineNumber: 1, FullContent: content})
	assert.Empty(t, issues)
}

func TestInappropriateRuleStopsAfterFirstMatch(t *testing.T) {
	rule := NewInappropriateRule()

	issues := rule.Check("yeah this is gonna be awesome", testContext(1))
	require.Len(t, issues, 1)
	assert.Equal(t, TypeInappropriate, issues[0].Type)
	assert.Equal(t, SeverityMedium, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "gonna")
}

func TestInappropriateRuleWordBoundary(t *testing.T) {
	rule := NewInappropriateRule()

	// "gonnabe" must not match the "gonna" entry.
	issues := rule.Check("the gonnabe word is fine", testContext(1))
	assert.Empty(t, issues)
}
