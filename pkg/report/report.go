package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
)

// NoIssuesMessage is returned for an empty issue list. Downstream tooling
// matches this string, so it must not change.
const NoIssuesMessage = "✅ No validation issues found"

// severityMarkers are the per-severity line markers. Agent-side parsers key
// on these, so they must not change either.
var severityMarkers = map[rules.Severity]string{
	rules.SeverityCritical: "🔴",
	rules.SeverityHigh:     "🟡",
	rules.SeverityMedium:   "🔵",
	rules.SeverityLow:      "🟠",
}

// Format renders issues grouped by severity in the fixed order critical,
// high, medium, low. Within a group the input order is preserved. Empty
// severity groups are omitted. Format is a pure function of the issue list.
func Format(issues []rules.Issue) string {
	if len(issues) == 0 {
		return NoIssuesMessage
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("❌ Found %d validation issue(s)\n", len(issues)))

	for _, severity := range rules.SeverityOrder {
		group := filterBySeverity(issues, severity)
		if len(group) == 0 {
			continue
		}

		builder.WriteString(fmt.Sprintf("\n%s (%d):\n", strings.ToUpper(string(severity)), len(group)))
		for _, issue := range group {
			builder.WriteString(fmt.Sprintf("%s %s:%d [%s] %s\n",
				severityMarkers[severity], issue.File, issue.Line, issue.Type, issue.Message))
			if issue.Suggestion != "" {
				builder.WriteString(fmt.Sprintf("   💡 %s\n", issue.Suggestion))
			}
		}
	}

	return builder.String()
}

// FormatJSON renders issues as indented JSON for the automation surfaces.
// An empty list renders as an empty array, never null.
func FormatJSON(issues []rules.Issue) (string, error) {
	if issues == nil {
		issues = []rules.Issue{}
	}
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding issues: %v", err)
	}
	return string(data), nil
}

// CountByType returns the number of issues per rule type.
func CountByType(issues []rules.Issue) map[rules.RuleType]int {
	counts := make(map[rules.RuleType]int)
	for _, issue := range issues {
		counts[issue.Type]++
	}
	return counts
}

// CountBySeverity returns the number of issues per severity.
func CountBySeverity(issues []rules.Issue) map[rules.Severity]int {
	counts := make(map[rules.Severity]int)
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}

func filterBySeverity(issues []rules.Issue, severity rules.Severity) []rules.Issue {
	var group []rules.Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			group = append(group, issue)
		}
	}
	return group
}
