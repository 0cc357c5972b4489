package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// ToolStats represents statistics for a single tool
type ToolStats struct {
	Name                 string         `json:"name"`
	CallCount            int            `json:"call_count"`
	TotalExecutionTime   time.Duration  `json:"total_execution_time"`
	AverageExecutionTime time.Duration  `json:"average_execution_time"`
	IssuesFound          map[string]int `json:"issues_found,omitempty"`
	IssuesFixed          map[string]int `json:"issues_fixed,omitempty"`
	LastUsed             time.Time      `json:"last_used"`
}

// SessionStats represents statistics for the current session
type SessionStats struct {
	StartTime time.Time             `json:"start_time"`
	Tools     map[string]*ToolStats `json:"tools"`
}

// PersistentStats represents statistics persisted across all sessions
type PersistentStats struct {
	FirstRecorded time.Time             `json:"first_recorded"`
	LastUpdated   time.Time             `json:"last_updated"`
	Tools         map[string]*ToolStats `json:"tools"`
}

// StatsManager manages tool usage statistics
type StatsManager struct {
	sessionStats    *SessionStats
	persistentStats *PersistentStats
	statsFilePath   string
	mutex           sync.RWMutex
}

// NewStatsManager creates a new StatsManager
func NewStatsManager(statsFilePath string) (*StatsManager, error) {
	manager := &StatsManager{
		sessionStats: &SessionStats{
			StartTime: time.Now(),
			Tools:     make(map[string]*ToolStats),
		},
		persistentStats: &PersistentStats{
			FirstRecorded: time.Now(),
			LastUpdated:   time.Now(),
			Tools:         make(map[string]*ToolStats),
		},
		statsFilePath: statsFilePath,
	}

	// Create the directory if it doesn't exist
	dir := filepath.Dir(statsFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for stats file: %v", err)
	}

	// Load persistent stats if they exist
	if _, err := os.Stat(statsFilePath); err == nil {
		data, err := os.ReadFile(statsFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read stats file: %v", err)
		}

		if err := json.Unmarshal(data, &manager.persistentStats); err != nil {
			return nil, fmt.Errorf("failed to parse stats file: %v", err)
		}
	}

	return manager, nil
}

// RecordToolUsage records execution statistics for a tool usage
func (m *StatsManager) RecordToolUsage(toolName string, executionTime time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, tool := range []*ToolStats{m.tool(m.sessionStats.Tools, toolName), m.tool(m.persistentStats.Tools, toolName)} {
		tool.CallCount++
		tool.TotalExecutionTime += executionTime
		tool.AverageExecutionTime = tool.TotalExecutionTime / time.Duration(tool.CallCount)
		tool.LastUsed = time.Now()
	}
	m.persistentStats.LastUpdated = time.Now()

	return m.savePersistentStats()
}

// RecordIssuesFound adds per-rule-type issue counts for a tool
func (m *StatsManager) RecordIssuesFound(toolName string, counts map[string]int) error {
	return m.recordIssues(toolName, counts, false)
}

// RecordIssuesFixed adds per-rule-type fixed-issue counts for a tool
func (m *StatsManager) RecordIssuesFixed(toolName string, counts map[string]int) error {
	return m.recordIssues(toolName, counts, true)
}

func (m *StatsManager) recordIssues(toolName string, counts map[string]int, fixed bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, tool := range []*ToolStats{m.tool(m.sessionStats.Tools, toolName), m.tool(m.persistentStats.Tools, toolName)} {
		var target map[string]int
		if fixed {
			if tool.IssuesFixed == nil {
				tool.IssuesFixed = make(map[string]int)
			}
			target = tool.IssuesFixed
		} else {
			if tool.IssuesFound == nil {
				tool.IssuesFound = make(map[string]int)
			}
			target = tool.IssuesFound
		}
		for ruleType, count := range counts {
			target[ruleType] += count
		}
	}
	m.persistentStats.LastUpdated = time.Now()

	return m.savePersistentStats()
}

// tool returns the ToolStats entry for toolName, creating it if needed.
// Callers must hold the mutex.
func (m *StatsManager) tool(tools map[string]*ToolStats, toolName string) *ToolStats {
	tool, ok := tools[toolName]
	if !ok {
		tool = &ToolStats{
			Name:     toolName,
			LastUsed: time.Now(),
		}
		tools[toolName] = tool
	}
	return tool
}

// GetSessionStats returns statistics for the current session
func (m *StatsManager) GetSessionStats() *SessionStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// Create a deep copy to avoid race conditions
	stats := &SessionStats{
		StartTime: m.sessionStats.StartTime,
		Tools:     make(map[string]*ToolStats),
	}

	for name, tool := range m.sessionStats.Tools {
		stats.Tools[name] = copyToolStats(tool)
	}

	return stats
}

// GetPersistentStats returns statistics persisted across all sessions
func (m *StatsManager) GetPersistentStats() *PersistentStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// Create a deep copy to avoid race conditions
	stats := &PersistentStats{
		FirstRecorded: m.persistentStats.FirstRecorded,
		LastUpdated:   m.persistentStats.LastUpdated,
		Tools:         make(map[string]*ToolStats),
	}

	for name, tool := range m.persistentStats.Tools {
		stats.Tools[name] = copyToolStats(tool)
	}

	return stats
}

// ResetSessionStats resets the session statistics
func (m *StatsManager) ResetSessionStats() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessionStats = &SessionStats{
		StartTime: time.Now(),
		Tools:     make(map[string]*ToolStats),
	}
}

func copyToolStats(tool *ToolStats) *ToolStats {
	toolCopy := *tool
	if tool.IssuesFound != nil {
		toolCopy.IssuesFound = make(map[string]int, len(tool.IssuesFound))
		for k, v := range tool.IssuesFound {
			toolCopy.IssuesFound[k] = v
		}
	}
	if tool.IssuesFixed != nil {
		toolCopy.IssuesFixed = make(map[string]int, len(tool.IssuesFixed))
		for k, v := range tool.IssuesFixed {
			toolCopy.IssuesFixed[k] = v
		}
	}
	return &toolCopy
}

// savePersistentStats saves persistent stats to file
func (m *StatsManager) savePersistentStats() error {
	data, err := json.MarshalIndent(m.persistentStats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}

	if err := os.WriteFile(m.statsFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}

	return nil
}

// FormatStats formats statistics as a string
func FormatStats(sessionStats *SessionStats, persistentStats *PersistentStats) string {
	result := "Tool Usage Statistics\n\n"

	result += "Current Session Statistics:\n"
	result += fmt.Sprintf("Session started: %s\n", sessionStats.StartTime.Format(time.RFC3339))
	result += fmt.Sprintf("Session duration: %s\n\n", time.Since(sessionStats.StartTime).Round(time.Second))
	result += formatToolTable(sessionStats.Tools, "No tools used in this session.\n")

	result += "\nAll-Time Statistics:\n"
	result += fmt.Sprintf("First recorded: %s\n", persistentStats.FirstRecorded.Format(time.RFC3339))
	result += fmt.Sprintf("Last updated: %s\n\n", persistentStats.LastUpdated.Format(time.RFC3339))
	result += formatToolTable(persistentStats.Tools, "No tools used across all sessions.\n")

	return result
}

func formatToolTable(tools map[string]*ToolStats, emptyMessage string) string {
	if len(tools) == 0 {
		return emptyMessage
	}

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	result := "Tool                  | Calls | Avg Time  | Total Time | Found | Fixed\n"
	result += "----------------------|-------|-----------|------------|-------|------\n"

	for _, name := range names {
		tool := tools[name]
		result += fmt.Sprintf("%-22s| %5d | %9s | %10s | %5d | %5d\n",
			tool.Name,
			tool.CallCount,
			tool.AverageExecutionTime.Round(time.Millisecond).String(),
			tool.TotalExecutionTime.Round(time.Millisecond).String(),
			sumCounts(tool.IssuesFound),
			sumCounts(tool.IssuesFixed))
	}

	return result
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, count := range counts {
		total += count
	}
	return total
}
