package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"coder-cli/internal/auth"
	"coder-cli/internal/config"
	"coder-cli/internal/session"
	"coder-cli/internal/tools"
	"coder-cli/internal/tui/history"
	"coder-cli/internal/tui/render"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// sampleTranscript builds a canned event stream exercising every cell kind,
// standing in for the engine that normally produces these events.
func sampleTranscript(cfg config.Config) (*history.AnimatedWelcomeCell, []history.Cell) {
	modelName := cfg.Model
	if modelName == "" {
		modelName = "gpt-5"
	}
	provider := cfg.Provider
	if provider == "" {
		provider = "openai"
	}
	sessionCfg := session.Config{
		Model:           modelName,
		ModelProviderID: provider,
		Cwd:             mustCwd(),
		ApprovalMode:    "on-request",
		SandboxMode:     "workspace-write",
	}

	welcome := history.NewAnimatedWelcome()
	cells := []history.Cell{
		welcome,
		history.NewSessionInfo(sessionCfg, session.ConfiguredEvent{Model: modelName}, true),
		history.NewUserPrompt("add a retry to the fetcher and run the tests"),
		history.NewBackgroundEvent(fmt.Sprintf("session started: %s", uuid.NewString())),
		history.NewCompletedExecCommand(
			[]string{"rg", "-n", "retry", "internal/fetch"},
			[]tools.ParsedCommand{{
				Kind:  tools.ParsedSearch,
				Cmd:   []string{"rg", "-n", "retry", "internal/fetch"},
				Query: "retry",
				Path:  "internal/fetch",
			}},
			history.CommandOutput{ExitCode: 0, Stdout: "fetch.go:42: // TODO retry\n"},
		),
		history.NewCompletedExecCommand(
			[]string{"bash", "-lc", "go test ./internal/fetch/..."},
			nil,
			history.CommandOutput{ExitCode: 0, Stdout: "ok  \tinternal/fetch\t0.31s\n"},
		),
		history.NewCompletedToolCall(80,
			tools.ToolInvocation{Server: "files", Tool: "read", Arguments: map[string]string{"path": "internal/fetch/fetch.go"}},
			420*time.Millisecond, true,
			tools.ToolCallResult{Result: mcp.NewToolResultText("package fetch\n\nfunc Get(url string) ...")},
		),
		history.NewPlanUpdate(tools.UpdatePlanArgs{
			Explanation: "Retry with backoff, then verify.",
			Plan: []tools.PlanItem{
				{Step: "Read the fetcher", Status: tools.StepCompleted},
				{Step: "Add retry loop", Status: tools.StepInProgress},
				{Step: "Run tests", Status: tools.StepPending},
			},
		}),
		history.NewPatchEvent(history.PatchApprovalRequest, map[string]tools.FileChange{
			"internal/fetch/fetch.go": {Kind: tools.FileUpdate, UnifiedDiff: "@@ -40,6 +40,12 @@"},
		}, demoDiffSummary),
		statusCell(sessionCfg),
	}
	return welcome, cells
}

// demoDiffSummary plays the external diff-summary collaborator for the demo.
func demoDiffSummary(title string, changes map[string]tools.FileChange) []render.Line {
	lines := []render.Line{render.Plain(title)}
	paths := make([]string, 0, len(changes))
	for path := range changes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		lines = append(lines, render.Plain(fmt.Sprintf("  %s %s", changeGlyph(changes[path].Kind), path)))
	}
	return lines
}

func changeGlyph(kind tools.FileChangeKind) string {
	switch kind {
	case tools.FileAdd:
		return "A"
	case tools.FileDelete:
		return "D"
	default:
		return "M"
	}
}

func statusCell(cfg session.Config) history.Cell {
	usage := session.TokenUsage{InputTokens: 1200, CachedInputTokens: 200, OutputTokens: 640}
	var creds *auth.Credentials
	if c, ok, err := auth.Load(); err == nil && ok {
		creds = &c
	}
	return history.NewStatusOutput(cfg, usage, creds)
}

func mustCwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
