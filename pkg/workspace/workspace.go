package workspace

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Code-Monger/ProseSpinneret/pkg/stats"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// WorkspaceInfo represents the workspace information for one session
type WorkspaceInfo struct {
	RootDir    string    `json:"root_dir"`
	SessionID  string    `json:"session_id"`
	InitTime   time.Time `json:"init_time"`
	LastAccess time.Time `json:"last_access"`
}

// SessionStore manages workspace information for multiple sessions
type SessionStore struct {
	sessions map[string]WorkspaceInfo
	mutex    sync.RWMutex
}

// Global session store
var sessionStore = &SessionStore{
	sessions: make(map[string]WorkspaceInfo),
}

// GetWorkspaceInfo returns the workspace info for a session
func GetWorkspaceInfo(sessionID string) (WorkspaceInfo, bool) {
	sessionStore.mutex.RLock()
	defer sessionStore.mutex.RUnlock()

	info, exists := sessionStore.sessions[sessionID]
	if exists {
		// Update last access time
		info.LastAccess = time.Now()
		sessionStore.sessions[sessionID] = info
	}

	return info, exists
}

// SetWorkspaceInfo sets the workspace info for a session
func SetWorkspaceInfo(info WorkspaceInfo) {
	if info.SessionID == "" {
		info.SessionID = fmt.Sprintf("session-%d", time.Now().Unix())
	}

	sessionStore.mutex.Lock()
	defer sessionStore.mutex.Unlock()

	info.InitTime = time.Now()
	info.LastAccess = time.Now()
	sessionStore.sessions[info.SessionID] = info
}

// ListSessions returns a list of all session IDs
func ListSessions() []string {
	sessionStore.mutex.RLock()
	defer sessionStore.mutex.RUnlock()

	sessions := make([]string, 0, len(sessionStore.sessions))
	for sessionID := range sessionStore.sessions {
		sessions = append(sessions, sessionID)
	}

	return sessions
}

// GetRootDir returns the workspace root directory for a session
func GetRootDir(sessionID string) string {
	info, exists := GetWorkspaceInfo(sessionID)
	if !exists {
		return "." // Default to current directory if session doesn't exist
	}

	return info.RootDir
}

// ResolveRelativePath resolves a relative path against the workspace root
// directory for a session
func ResolveRelativePath(path string, sessionID string) string {
	if filepath.IsAbs(path) {
		return path
	}

	rootDir := GetRootDir(sessionID)
	if rootDir == "" {
		rootDir = "." // Default to current directory if not set
	}

	return filepath.Join(rootDir, path)
}

// HandleWorkspace is the handler function for the workspace tool
func HandleWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract operation
	operation, ok := arguments["operation"].(string)
	if !ok {
		return nil, fmt.Errorf("operation must be a string")
	}

	switch operation {
	case "initialize":
		// Extract root directory
		rootDir, ok := arguments["root_dir"].(string)
		if !ok {
			return nil, fmt.Errorf("root_dir must be a string")
		}

		sessionID, _ := arguments["session_id"].(string)

		SetWorkspaceInfo(WorkspaceInfo{
			RootDir:   rootDir,
			SessionID: sessionID,
		})

		log.Printf("[Workspace] Initialized workspace with root directory: %s", rootDir)

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Workspace initialized with root directory: %s", rootDir),
				},
			},
		}, nil

	case "get":
		sessionID, _ := arguments["session_id"].(string)

		info, exists := GetWorkspaceInfo(sessionID)
		if !exists {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.TextContent{
						Type: "text",
						Text: "No workspace initialized for this session",
					},
				},
			}, nil
		}

		var summary strings.Builder
		summary.WriteString("Workspace Information:\n")
		summary.WriteString(fmt.Sprintf("Root directory: %s\n", info.RootDir))
		summary.WriteString(fmt.Sprintf("Session ID: %s\n", info.SessionID))
		summary.WriteString(fmt.Sprintf("Initialized: %s\n", info.InitTime.Format(time.RFC3339)))

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: summary.String(),
				},
			},
		}, nil

	case "list":
		sessions := ListSessions()

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Active sessions: %s", strings.Join(sessions, ", ")),
				},
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown operation: %s", operation)
	}
}

// RegisterWorkspace registers the workspace tool with the MCP server
func RegisterWorkspace(mcpServer *server.MCPServer) {
	// Create the tool definition
	workspaceTool := mcp.NewTool("workspace",
		mcp.WithDescription("Manages workspace root directories per session. Content validation tools resolve relative file paths against the session workspace."),
		mcp.WithString("operation",
			mcp.Description("The operation to perform: 'initialize', 'get', or 'list'"),
			mcp.Required(),
		),
		mcp.WithString("root_dir",
			mcp.Description("The workspace root directory (required for 'initialize')"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID the operation applies to"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("workspace", HandleWorkspace)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(workspaceTool, wrappedHandler)

	log.Printf("[Workspace] Registered workspace tool")
}
