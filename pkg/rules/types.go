package rules

// Severity represents the fixed urgency level of an issue. Severity is
// assigned per rule type and never computed dynamically.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// SeverityOrder lists severities from most to least urgent. Report grouping
// and merge-blocking policy both rely on this order.
var SeverityOrder = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// RuleType identifies the kind of check that produced an issue.
type RuleType string

const (
	TypeSpelling          RuleType = "spelling"
	TypeHonorifics        RuleType = "honorifics"
	TypePlaceholder       RuleType = "placeholder"
	TypeGrammar           RuleType = "grammar"
	TypeCapitalization    RuleType = "capitalization"
	TypeLongText          RuleType = "long-text"
	TypePluralConsistency RuleType = "plural-consistency"
	TypeInappropriate     RuleType = "inappropriate"
)

// AllTypes lists every built-in rule type in registration order.
var AllTypes = []RuleType{
	TypeSpelling,
	TypeHonorifics,
	TypePlaceholder,
	TypeGrammar,
	TypeCapitalization,
	TypeLongText,
	TypePluralConsistency,
	TypeInappropriate,
}

// AutoFixableTypes lists the rule types for which mechanical fixes are
// permitted. All other types require a human decision.
var AutoFixableTypes = []RuleType{TypeSpelling, TypeGrammar, TypeHonorifics, TypeCapitalization}

// Issue represents a single detected content problem.
type Issue struct {
	File       string   `json:"file"`
	Line       int      `json:"line"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	Type       RuleType `json:"type"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Context carries the document-level information a rule may need beyond the
// current line.
type Context struct {
	Filename    string
	LineNumber  int
	FullContent string
}

// Rule is a named detector that produces zero or more issues from a single
// line of text. Rules are stateless between invocations; shared dictionaries
// are read-only.
type Rule interface {
	Name() string
	Type() RuleType
	Severity() Severity
	Check(line string, ctx Context) []Issue
}

// IsBlocking reports whether an issue severity should fail a batch under the
// merge-blocking policy.
func IsBlocking(severity Severity) bool {
	return severity == SeverityCritical || severity == SeverityHigh
}
