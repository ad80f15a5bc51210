package history

import (
	"strings"
	"testing"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"
)

func TestExecCellStructuredRendering(t *testing.T) {
	parsed := []tools.ParsedCommand{
		{Kind: tools.ParsedRead, Cmd: []string{"cat", "fetch.go"}, Name: "fetch.go"},
		{Kind: tools.ParsedSearch, Cmd: []string{"rg", "Spawn"}, Query: "Spawn", Path: "src"},
	}
	cell := NewCompletedExecCommand([]string{"cat", "fetch.go"}, parsed, CommandOutput{ExitCode: 0, Stdout: "contents\n"})
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())

	if plain[0] != "⚙︎ Working" {
		t.Fatalf("header = %q", plain[0])
	}
	if plain[1] != "  L 📖 fetch.go" {
		t.Fatalf("first command line = %q", plain[1])
	}
	if plain[2] != "    🔎 Spawn in src" {
		t.Fatalf("second command line = %q", plain[2])
	}
	// Successful structured commands never show output.
	if strings.Contains(strings.Join(plain, "\n"), "contents") {
		t.Fatalf("stdout leaked into structured rendering: %v", plain)
	}
	if plain[len(plain)-1] != "" {
		t.Fatalf("expected trailing blank line")
	}
}

func TestExecCellStructuredShowsFailureOutput(t *testing.T) {
	parsed := []tools.ParsedCommand{{Kind: tools.ParsedTest, Cmd: []string{"cargo", "test"}}}
	cell := NewCompletedExecCommand([]string{"cargo", "test"}, parsed, CommandOutput{ExitCode: 1, Stderr: "assertion failed\n"})
	joined := strings.Join(tuirender.LinesToPlainStrings(cell.PlainLines()), "\n")
	if !strings.Contains(joined, "    assertion failed") {
		t.Fatalf("failure output missing:\n%s", joined)
	}
}

func TestExecCellGenericRendering(t *testing.T) {
	cell := NewCompletedExecCommand([]string{"echo", "hello world"}, nil, CommandOutput{ExitCode: 0, Stdout: "hello world\n"})
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())

	if plain[0] != "⚡ Ran command echo 'hello world'" {
		t.Fatalf("banner = %q", plain[0])
	}
	if plain[1] != "  ⎿ hello world" {
		t.Fatalf("output line = %q", plain[1])
	}
}

func TestExecCellStripsBashLC(t *testing.T) {
	cell := NewActiveExecCommand([]string{"bash", "-lc", "grep -r TODO ."}, nil)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if plain[0] != "⚡ Ran command grep -r TODO ." {
		t.Fatalf("banner = %q", plain[0])
	}
}

func TestExecCellMultilineScript(t *testing.T) {
	script := "for f in *.go\ndo echo $f\ndone"
	cell := NewActiveExecCommand([]string{"bash", "-lc", script}, nil)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if plain[0] != "⚡ Ran command for f in *.go" {
		t.Fatalf("banner = %q", plain[0])
	}
	if plain[1] != "do echo $f" || plain[2] != "done" {
		t.Fatalf("continuation lines = %q, %q", plain[1], plain[2])
	}
}

func TestDescribeParsedCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  tools.ParsedCommand
		want string
	}{
		{"read", tools.ParsedCommand{Kind: tools.ParsedRead, Name: "main.go"}, "📖 main.go"},
		{"list with path", tools.ParsedCommand{Kind: tools.ParsedListFiles, Path: "internal"}, "📂 internal"},
		{"list without path", tools.ParsedCommand{Kind: tools.ParsedListFiles, Cmd: []string{"ls", "-la"}}, "📂 ls -la"},
		{"search query and path", tools.ParsedCommand{Kind: tools.ParsedSearch, Query: "foo", Path: "src"}, "🔎 foo in src"},
		{"search query only", tools.ParsedCommand{Kind: tools.ParsedSearch, Query: "foo"}, "🔎 foo"},
		{"search path only", tools.ParsedCommand{Kind: tools.ParsedSearch, Path: "src"}, "🔎 src"},
		{"search bare", tools.ParsedCommand{Kind: tools.ParsedSearch, Cmd: []string{"rg", "-n"}}, "🔎 rg -n"},
		{"format", tools.ParsedCommand{Kind: tools.ParsedFormat, Cmd: []string{"gofmt"}}, "✨ Formatting"},
		{"test", tools.ParsedCommand{Kind: tools.ParsedTest, Cmd: []string{"go", "test"}}, "🧪 go test"},
		{"lint", tools.ParsedCommand{Kind: tools.ParsedLint, Cmd: []string{"golangci-lint", "run"}}, "🧹 golangci-lint run"},
		{"unknown", tools.ParsedCommand{Kind: tools.ParsedUnknown, Cmd: []string{"make"}}, "⌨️ make"},
	}
	for _, tt := range tests {
		if got := describeParsedCommand(tt.cmd); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestJoinCommandSafe(t *testing.T) {
	if got := joinCommandSafe([]string{"echo", "hello world"}); got != "echo 'hello world'" {
		t.Fatalf("quoting = %q", got)
	}
	if got := joinCommandSafe([]string{"echo", "with\x00nul"}); got != "echo with\x00nul" {
		t.Fatalf("nul fallback = %q", got)
	}
}

func TestExecCellHeightMatchesWrappedPlainLines(t *testing.T) {
	cells := []*ExecCell{
		NewActiveExecCommand([]string{"bash", "-lc", "echo a really quite long command line that will wrap"}, nil),
		NewCompletedExecCommand([]string{"ls"}, nil, CommandOutput{Stdout: numberedOutput(13)}),
		NewCompletedExecCommand([]string{"rg", "x"}, []tools.ParsedCommand{{Kind: tools.ParsedSearch, Query: "x"}}, CommandOutput{ExitCode: 1, Stderr: "no matches found anywhere in this very long tree\n"}),
	}
	for i, cell := range cells {
		for _, width := range []int{8, 20, 40, 120} {
			wrapped := tuirender.WrapLines(cell.PlainLines(), width)
			if got := cell.DesiredHeight(width); got != len(wrapped) {
				t.Fatalf("cell %d width %d: DesiredHeight = %d, wrapped rows = %d", i, width, got, len(wrapped))
			}
		}
	}
}
