package autofix

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/Code-Monger/ProseSpinneret/pkg/stats"
	"github.com/Code-Monger/ProseSpinneret/pkg/validator"
	"github.com/Code-Monger/ProseSpinneret/pkg/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleApplyFixes is the handler function for the apply_fixes tool. It
// validates the content, applies every available fix, and returns the fixed
// content with a summary of what changed.
func HandleApplyFixes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract content or path (one of the two is required)
	content, _ := arguments["content"].(string)
	path, _ := arguments["path"].(string)
	if content == "" && path == "" {
		return nil, fmt.Errorf("either content or path must be provided")
	}

	// Extract filename for issue reporting
	filename, _ := arguments["filename"].(string)

	// Extract session ID
	sessionID, _ := arguments["session_id"].(string)

	// Extract write flag (only meaningful with a path)
	write := false
	if writeBool, ok := arguments["write"].(bool); ok {
		write = writeBool
	}

	// Read the file when a path is given
	var fullPath string
	if path != "" {
		fullPath = workspace.ResolveRelativePath(path, sessionID)
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return nil, fmt.Errorf("error reading file: %v", err)
		}
		content = string(data)
		if filename == "" {
			filename = path
		}
	}
	if filename == "" {
		filename = "content.md"
	}

	// Extract custom dictionary words
	var customWords []string
	if customVal, ok := arguments["custom_dictionary"].([]interface{}); ok {
		for _, word := range customVal {
			if wordStr, ok := word.(string); ok {
				customWords = append(customWords, wordStr)
			}
		}
	}

	// Validate, then fix
	v := validator.New(validator.Options{CustomWords: customWords})
	issues := v.Validate(content, filename)

	engine := NewEngine()
	fixed, result := engine.ApplyFixes(content, issues)

	log.Printf("[AutoFix] Fixed %d of %d issue(s) in %s", result.Total(), len(issues), filename)

	// Record per-rule-type fixed counts
	fixedCounts := make(map[string]int)
	for ruleType, count := range result.Fixed {
		fixedCounts[string(ruleType)] = count
	}
	stats.RecordIssuesFixed("apply_fixes", fixedCounts)

	// Write the fixed content back when requested
	if write && fullPath != "" {
		if err := os.WriteFile(fullPath, []byte(fixed), 0644); err != nil {
			return nil, fmt.Errorf("error writing file: %v", err)
		}
		log.Printf("[AutoFix] Wrote fixed content to %s", fullPath)
	}

	// Build the summary
	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Applied %d fix(es) to %s:\n", result.Total(), filename))
	for _, ruleType := range rules.AutoFixableTypes {
		if count := result.Fixed[ruleType]; count > 0 {
			summary.WriteString(fmt.Sprintf("- %s: %d\n", ruleType, count))
		}
	}
	if result.Skipped > 0 {
		summary.WriteString(fmt.Sprintf("Skipped (no fix strategy): %d\n", result.Skipped))
	}
	for _, failure := range result.Failures {
		summary.WriteString(fmt.Sprintf("Failed on line %d: %s\n", failure.Issue.Line, failure.Reason))
	}
	summary.WriteString("\nFixed content:\n")
	summary.WriteString(fixed)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: summary.String(),
			},
		},
	}, nil
}

// RegisterApplyFixes registers the apply_fixes tool with the MCP server
func RegisterApplyFixes(mcpServer *server.MCPServer) {
	// Create the tool definition
	applyFixesTool := mcp.NewTool("apply_fixes",
		mcp.WithDescription("Validates text content and applies mechanical fixes for spelling, grammar, honorific, and capitalization issues. Placeholder and style issues are reported but never auto-fixed."),
		mcp.WithString("content",
			mcp.Description("The text content to fix (either content or path is required)"),
		),
		mcp.WithString("path",
			mcp.Description("Path of a file to fix, absolute or relative to the session workspace"),
		),
		mcp.WithString("filename",
			mcp.Description("Filename used in issue locations (default: 'content.md', or the path when given)"),
		),
		mcp.WithBoolean("write",
			mcp.Description("Whether to write the fixed content back to the file (default: false; requires path)"),
		),
		mcp.WithArray("custom_dictionary",
			mcp.Description("A list of custom words to consider as correctly spelled"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID to use for resolving relative paths"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("apply_fixes", HandleApplyFixes)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(applyFixesTool, wrappedHandler)

	log.Printf("[AutoFix] Registered apply_fixes tool")
}
