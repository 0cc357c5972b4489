package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsWithBraceOrBracket(t *testing.T) {
	assert.True(t, startsWithBraceOrBracket(`{ "key": "value" }`))
	assert.True(t, startsWithBraceOrBracket("  [1, 2, 3]"))
	assert.False(t, startsWithBraceOrBracket("A plain sentence."))
	assert.False(t, startsWithBraceOrBracket(""))
}

func TestDeclaresVariable(t *testing.T) {
	assert.True(t, declaresVariable("var count = 5"))
	assert.True(t, declaresVariable("const maxRetries = 3"))
	assert.True(t, declaresVariable("func main() {"))
	assert.False(t, declaresVariable("The variable was set."))
}

func TestHasCamelCase(t *testing.T) {
	assert.True(t, hasCamelCase("call getUserName here"))
	assert.False(t, hasCamelCase("Plain Title Case text"))
}

func TestHasKebabCase(t *testing.T) {
	assert.True(t, hasKebabCase("use the content-type-header value"))
	// Two segments are common in prose (well-known, long-term).
	assert.False(t, hasKebabCase("a well-known fact"))
}

func TestIsComment(t *testing.T) {
	assert.True(t, isComment("// a code comment"))
	assert.True(t, isComment("  /* block */"))
	assert.True(t, isComment("<!-- html comment -->"))
	assert.False(t, isComment("# A markdown heading"))
	assert.False(t, isComment("* a markdown bullet"))
}

func TestIsKeyValueAssignment(t *testing.T) {
	assert.True(t, isKeyValueAssignment(`name: John`))
	assert.True(t, isKeyValueAssignment(`"timeout" = 30`))
	assert.False(t, isKeyValueAssignment("This is prose with no assignment"))
}

func TestLooksLikeCode(t *testing.T) {
	assert.True(t, LooksLikeCode("var userName = getName()"))
	assert.True(t, LooksLikeCode(`{ "json": true }`))
	assert.False(t, LooksLikeCode("Mr. Smith said he would recieve the package."))
	assert.False(t, LooksLikeCode("Plain prose stays prose."))
}
