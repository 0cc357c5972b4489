package stats

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	// Global stats manager instance
	globalStatsManager *StatsManager
)

// InitStatsManager initializes the global stats manager
func InitStatsManager(dataDir string) error {
	statsFilePath := filepath.Join(dataDir, "stats.json")
	var err error
	globalStatsManager, err = NewStatsManager(statsFilePath)
	return err
}

// GetStatsManager returns the global stats manager
func GetStatsManager() *StatsManager {
	return globalStatsManager
}

// HandleGetStats handles requests to get tool usage statistics
func HandleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Printf("[Stats] Received request to get stats")

	if globalStatsManager == nil {
		log.Printf("[Stats] Error: stats manager not initialized")
		return nil, fmt.Errorf("stats manager not initialized")
	}

	sessionStats := globalStatsManager.GetSessionStats()
	persistentStats := globalStatsManager.GetPersistentStats()

	statsText := FormatStats(sessionStats, persistentStats)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: statsText,
			},
		},
	}, nil
}

// RecordIssuesFound records per-rule-type issue counts for a tool
func RecordIssuesFound(toolName string, counts map[string]int) {
	if globalStatsManager == nil {
		return
	}
	if err := globalStatsManager.RecordIssuesFound(toolName, counts); err != nil {
		// Log the error but don't fail the request
		log.Printf("[Stats] Failed to record issues found: %v", err)
	}
}

// RecordIssuesFixed records per-rule-type fixed-issue counts for a tool
func RecordIssuesFixed(toolName string, counts map[string]int) {
	if globalStatsManager == nil {
		return
	}
	if err := globalStatsManager.RecordIssuesFixed(toolName, counts); err != nil {
		log.Printf("[Stats] Failed to record issues fixed: %v", err)
	}
}

// WrapHandler wraps a tool handler with stats tracking
func WrapHandler(toolName string, handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()

		log.Printf("[Stats] Starting execution of tool '%s'", toolName)

		result, err := handler(ctx, request)
		if err != nil {
			log.Printf("[Stats] Error executing tool '%s': %v", toolName, err)
			return nil, err
		}

		if globalStatsManager != nil {
			if err := globalStatsManager.RecordToolUsage(toolName, time.Since(startTime)); err != nil {
				// Log the error but don't fail the request
				log.Printf("[Stats] Failed to record tool usage: %v", err)
			}
		}

		return result, nil
	}
}

// RegisterStats registers the stats tool with the MCP server
func RegisterStats(mcpServer *server.MCPServer, dataDir string) error {
	// Initialize the stats manager
	if err := InitStatsManager(dataDir); err != nil {
		return err
	}

	// Create the tool definition
	statsTool := mcp.NewTool("stats",
		mcp.WithDescription("Retrieves usage statistics for MCP tools, including per-rule-type counts of issues found and fixed"),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := WrapHandler("stats", HandleGetStats)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(statsTool, wrappedHandler)

	log.Printf("[Stats] Registered stats tool")

	return nil
}
