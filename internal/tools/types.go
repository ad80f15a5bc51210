package tools

import "github.com/mark3labs/mcp-go/mcp"

// ParsedCommandKind classifies the semantic intent of a shell invocation.
type ParsedCommandKind string

const (
	ParsedRead      ParsedCommandKind = "read"
	ParsedListFiles ParsedCommandKind = "list_files"
	ParsedSearch    ParsedCommandKind = "search"
	ParsedFormat    ParsedCommandKind = "format"
	ParsedTest      ParsedCommandKind = "test"
	ParsedLint      ParsedCommandKind = "lint"
	ParsedUnknown   ParsedCommandKind = "unknown"
)

// ParsedCommand is one semantic command recognized inside a shell invocation.
// Optional fields use "" for absent; only display-relevant data is carried.
type ParsedCommand struct {
	Kind  ParsedCommandKind
	Cmd   []string // original argv for this command
	Name  string   // Read: file name
	Path  string   // ListFiles/Search: target path
	Query string   // Search: query string
}

// StepStatus is the lifecycle state of a single plan step.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

// PlanItem is one step of the model's plan.
type PlanItem struct {
	Step   string     `json:"step"`
	Status StepStatus `json:"status"`
}

// UpdatePlanArgs is the payload of an update_plan tool call.
type UpdatePlanArgs struct {
	Explanation string     `json:"explanation,omitempty"`
	Plan        []PlanItem `json:"plan"`
}

// ToolInvocation describes an MCP tool call: server.tool(arguments).
type ToolInvocation struct {
	Server    string
	Tool      string
	Arguments any
}

// ToolCallResult is the outcome handed back by the tool transport.
// A non-empty Err means the call failed and Result is ignored.
type ToolCallResult struct {
	Result *mcp.CallToolResult
	Err    string
}

// Failed reports whether the call ended in a transport-level failure.
func (r ToolCallResult) Failed() bool { return r.Err != "" }

// FileChangeKind tags the kind of change a patch makes to one file.
type FileChangeKind string

const (
	FileAdd    FileChangeKind = "add"
	FileDelete FileChangeKind = "delete"
	FileUpdate FileChangeKind = "update"
)

// FileChange describes one file's change inside a proposed patch.
// The diff itself is computed and summarized by an external collaborator.
type FileChange struct {
	Kind        FileChangeKind
	Content     string // Add: new file content
	UnifiedDiff string // Update: unified diff body
	MovePath    string // Update: non-empty when the file is renamed
}
