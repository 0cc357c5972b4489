package rules

import (
	"regexp"
	"strings"
)

// Line-shape predicates for recognizing code-like lines. The spelling rule
// skips any line matching one of these to avoid false positives on
// identifiers, configuration keys, and code snippets embedded in prose.

var (
	camelCasePattern = regexp.MustCompile(`[a-z][A-Z]`)
	kebabCasePattern = regexp.MustCompile(`\b[a-z0-9]+(-[a-z0-9]+){2,}\b`)
	declPattern      = regexp.MustCompile(`\b(var|let|const|func|function|def)\s+\w`)
	keyValuePattern  = regexp.MustCompile(`^\s*["']?[\w.$-]+["']?\s*[:=]\s*\S`)
)

// startsWithBraceOrBracket reports whether the line opens with a brace,
// bracket, or parenthesis.
func startsWithBraceOrBracket(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.ContainsRune("{}[]()", rune(trimmed[0]))
}

// declaresVariable reports whether the line contains a variable or function
// declaration keyword followed by an identifier.
func declaresVariable(line string) bool {
	return declPattern.MatchString(line)
}

// hasCamelCase reports whether the line contains a camelCase transition.
func hasCamelCase(line string) bool {
	return camelCasePattern.MatchString(line)
}

// hasKebabCase reports whether the line contains a multi-segment kebab-case
// identifier (three or more segments).
func hasKebabCase(line string) bool {
	return kebabCasePattern.MatchString(line)
}

// isComment reports whether the line starts with a comment marker.
func isComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	// Markdown bullets ("* item") and headings ("# title") are prose, so
	// only unambiguous code comment markers are recognized here.
	for _, prefix := range []string{"//", "/*", "#!", "<!--"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// isKeyValueAssignment reports whether the line resembles a key/value or
// JSON-style assignment.
func isKeyValueAssignment(line string) bool {
	return keyValuePattern.MatchString(line)
}

// LooksLikeCode reports whether a line should be treated as code rather than
// prose. It is the OR of the individual line-shape predicates above.
func LooksLikeCode(line string) bool {
	return startsWithBraceOrBracket(line) ||
		declaresVariable(line) ||
		hasCamelCase(line) ||
		hasKebabCase(line) ||
		isComment(line) ||
		isKeyValueAssignment(line)
}
