package serverinfo

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Code-Monger/ProseSpinneret/pkg/dictionary"
	"github.com/Code-Monger/ProseSpinneret/pkg/validator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleServerInfo is the handler function for the server info resource
func HandleServerInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	v := validator.New(validator.Options{})

	var info strings.Builder
	info.WriteString("Server Information:\n\n")
	info.WriteString(fmt.Sprintf("timestamp: %s\n", time.Now().Format(time.RFC3339)))
	info.WriteString(fmt.Sprintf("go_version: %s\n", runtime.Version()))
	info.WriteString(fmt.Sprintf("os: %s\n", runtime.GOOS))
	info.WriteString(fmt.Sprintf("architecture: %s\n", runtime.GOARCH))
	info.WriteString(fmt.Sprintf("uptime_seconds: %.0f\n", getUptime()))

	info.WriteString("\nValidation Rules:\n")
	for _, name := range v.RuleNames() {
		info.WriteString(fmt.Sprintf("- %s\n", name))
	}

	info.WriteString("\nDictionaries:\n")
	info.WriteString(fmt.Sprintf("known misspellings: %d\n", dictionary.MisspellingCount()))
	info.WriteString(fmt.Sprintf("embedded word list: %d\n", dictionary.KnownWordCount()))
	info.WriteString(fmt.Sprintf("grammar patterns: %d\n", len(dictionary.GrammarPatterns())))
	info.WriteString(fmt.Sprintf("placeholder patterns: %d\n", len(dictionary.PlaceholderPatterns())))
	info.WriteString(fmt.Sprintf("honorific tokens: %d\n", len(dictionary.Honorifics())))

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     info.String(),
		},
	}, nil
}

// RegisterServerInfo registers the server info resource with the MCP server
func RegisterServerInfo(mcpServer *server.MCPServer) {
	mcpServer.AddResource(
		mcp.NewResource(
			"server://info",
			"Server Information",
			mcp.WithMIMEType("text/plain"),
		),
		HandleServerInfo,
	)
}

// startTime is used to calculate uptime
var startTime = time.Now()

// getUptime returns the server uptime in seconds
func getUptime() float64 {
	return time.Since(startTime).Seconds()
}
