package autofix

import (
	"testing"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spellingIssue(line int, word, correction string) rules.Issue {
	return rules.Issue{
		File:       "doc.md",
		Line:       line,
		Message:    `Misspelled word: "` + word + `"`,
		Severity:   rules.SeverityHigh,
		Type:       rules.TypeSpelling,
		Suggestion: `Did you mean "` + correction + `"?`,
	}
}

func TestSpellingStrategyWordBoundary(t *testing.T) {
	strategy := NewSpellingStrategy()

	fixed, err := strategy.Apply("teh theater held teh crowd", spellingIssue(1, "teh", "the"))
	require.NoError(t, err)
	assert.Equal(t, "the theater held the crowd", fixed)
}

func TestSpellingStrategyMalformedMessage(t *testing.T) {
	strategy := NewSpellingStrategy()

	issue := spellingIssue(1, "teh", "the")
	issue.Message = "no quoted word here"

	_, err := strategy.Apply("teh line", issue)
	assert.Error(t, err)
}

func TestSpellingStrategyCanFixRequiresSuggestion(t *testing.T) {
	strategy := NewSpellingStrategy()

	issue := spellingIssue(1, "teh", "the")
	assert.True(t, strategy.CanFix(issue))

	issue.Suggestion = ""
	assert.False(t, strategy.CanFix(issue))
}

func TestHonorificsStrategyStripsTokens(t *testing.T) {
	strategy := NewHonorificsStrategy()

	issue := rules.Issue{Type: rules.TypeHonorifics, Line: 1}
	fixed, err := strategy.Apply("Mr. Smith went to Dr. Jones.", issue)
	require.NoError(t, err)
	assert.Equal(t, "Smith went to Jones.", fixed)

	// Reapplying changes nothing.
	again, err := strategy.Apply(fixed, issue)
	require.NoError(t, err)
	assert.Equal(t, fixed, again)
}

func TestCapitalizationStrategyUppercasesSentences(t *testing.T) {
	strategy := NewCapitalizationStrategy()

	issue := rules.Issue{Type: rules.TypeCapitalization, Line: 1}
	fixed, err := strategy.Apply("hello world. this is fine! so is this.", issue)
	require.NoError(t, err)
	assert.Equal(t, "Hello world. This is fine! So is this.", fixed)

	again, err := strategy.Apply(fixed, issue)
	require.NoError(t, err)
	assert.Equal(t, fixed, again)
}

func TestGrammarStrategyAppliesPhraseTable(t *testing.T) {
	strategy := NewGrammarStrategy()

	issue := rules.Issue{Type: rules.TypeGrammar, Line: 1}
	fixed, err := strategy.Apply("it could of been your welcome message", issue)
	require.NoError(t, err)
	assert.Equal(t, "it could have been you're welcome message", fixed)

	again, err := strategy.Apply(fixed, issue)
	require.NoError(t, err)
	assert.Equal(t, fixed, again)
}

func TestPlaceholderStrategyNeverFixes(t *testing.T) {
	strategy := NewPlaceholderStrategy()

	assert.False(t, strategy.CanFix(rules.Issue{Type: rules.TypePlaceholder}))

	line := "TODO finish this"
	fixed, err := strategy.Apply(line, rules.Issue{Type: rules.TypePlaceholder, Line: 1})
	require.NoError(t, err)
	assert.Equal(t, line, fixed)
}
