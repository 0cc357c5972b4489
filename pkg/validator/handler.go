package validator

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Code-Monger/ProseSpinneret/pkg/report"
	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/Code-Monger/ProseSpinneret/pkg/stats"
	"github.com/Code-Monger/ProseSpinneret/pkg/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleValidateContent is the handler function for the validate_content tool
func HandleValidateContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	// Read the file when a path is given
	if path != "" {
		fullPath := workspace.ResolveRelativePath(path, sessionID)
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

	// Extract validator options
	opts := optionsFromArguments(arguments)

	// Extract output format
	format := "text"
	if formatStr, ok := arguments["format"].(string); ok && formatStr != "" {
		format = formatStr
	}

	// Run the validation
	v := New(opts)
	issues := v.Validate(content, filename)

	log.Printf("[Validate] Checked %s: %d issue(s) found", filename, len(issues))

	// Record per-rule-type counts
	stats.RecordIssuesFound("validate_content", typeCounts(issues))

	// Render the result
	var text string
	if format == "json" {
		var err error
		text, err = report.FormatJSON(issues)
		if err != nil {
			return nil, err
		}
	} else {
		text = report.Format(issues)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}

// optionsFromArguments builds validator Options from tool arguments.
func optionsFromArguments(arguments map[string]interface{}) Options {
	var opts Options

	if customVal, ok := arguments["custom_dictionary"].([]interface{}); ok {
		for _, word := range customVal {
			if wordStr, ok := word.(string); ok {
				opts.CustomWords = append(opts.CustomWords, wordStr)
			}
		}
	}

	if strictBool, ok := arguments["strict_spelling"].(bool); ok {
		opts.StrictSpelling = strictBool
	}

	if typesVal, ok := arguments["rule_types"].([]interface{}); ok {
		for _, ruleType := range typesVal {
			if typeStr, ok := ruleType.(string); ok {
				opts.EnabledTypes = append(opts.EnabledTypes, rules.RuleType(typeStr))
			}
		}
	}

	return opts
}

// typeCounts converts per-rule-type issue counts to the string keys the
// stats manager stores.
func typeCounts(issues []rules.Issue) map[string]int {
	counts := make(map[string]int)
	for ruleType, count := range report.CountByType(issues) {
		counts[string(ruleType)] = count
	}
	return counts
}

// RegisterValidateContent registers the validate_content tool with the MCP server
func RegisterValidateContent(mcpServer *server.MCPServer) {
	// Create the tool definition
	validateTool := mcp.NewTool("validate_content",
		mcp.WithDescription("Validates text content for spelling errors, grammar mistakes, honorifics (Mr., Dr., etc.), placeholder text (TODO, TBD, FIXME), capitalization issues, and style problems. Returns detailed issues with suggestions for fixes."),
		mcp.WithString("content",
			mcp.Description("The text content to validate (either content or path is required)"),
		),
		mcp.WithString("path",
			mcp.Description("Path of a file to validate, absolute or relative to the session workspace"),
		),
		mcp.WithString("filename",
			mcp.Description("Filename used in issue locations (default: 'content.md', or the path when given)"),
		),
		mcp.WithArray("custom_dictionary",
			mcp.Description("A list of custom words to consider as correctly spelled"),
		),
		mcp.WithBoolean("strict_spelling",
			mcp.Description("Whether to also flag words unknown to the embedded word list (default: false)"),
		),
		mcp.WithArray("rule_types",
			mcp.Description("Rule types to run (default: all): spelling, honorifics, placeholder, grammar, capitalization, long-text, plural-consistency, inappropriate"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'text' or 'json' (default: 'text')"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID to use for resolving relative paths"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("validate_content", HandleValidateContent)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(validateTool, wrappedHandler)

	log.Printf("[Validate] Registered validate_content tool")
}
