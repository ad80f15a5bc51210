package history

import (
	"fmt"
	"strings"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"
)

var lightBlueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

// ExecCell shows a shell invocation, active while Output is nil and
// completed once the output snapshot is attached at construction.
type ExecCell struct {
	Command []string
	Parsed  []tools.ParsedCommand
	Output  *CommandOutput
}

// NewActiveExecCommand renders a command that is still running.
func NewActiveExecCommand(command []string, parsed []tools.ParsedCommand) *ExecCell {
	return newExecCell(command, parsed, nil)
}

// NewCompletedExecCommand renders a finished command with its output snapshot.
func NewCompletedExecCommand(command []string, parsed []tools.ParsedCommand, output CommandOutput) *ExecCell {
	return newExecCell(command, parsed, &output)
}

func newExecCell(command []string, parsed []tools.ParsedCommand, output *CommandOutput) *ExecCell {
	return &ExecCell{
		Command: append([]string(nil), command...),
		Parsed:  append([]tools.ParsedCommand(nil), parsed...),
		Output:  output,
	}
}

func (c *ExecCell) PlainLines() []tuirender.Line {
	if len(c.Parsed) == 0 {
		return execCommandGenericLines(c.Command, c.Output)
	}
	return parsedCommandLines(c.Parsed, c.Output)
}

func (c *ExecCell) DesiredHeight(width int) int {
	return tuirender.CountWrappedRows(c.PlainLines(), width)
}

// parsedCommandLines is the structured rendering path: one icon line per
// recognized command, output shown only when the command failed.
func parsedCommandLines(parsed []tools.ParsedCommand, output *CommandOutput) []tuirender.Line {
	lines := []tuirender.Line{tuirender.Plain("⚙︎ Working")}

	for i, cmd := range parsed {
		prefix := "    "
		if i == 0 {
			prefix = "  L "
		}
		lines = append(lines, tuirender.Line{Spans: []tuirender.Span{
			{Text: prefix, Style: dimStyle},
			{Text: describeParsedCommand(cmd), Style: lightBlueStyle},
		}})
	}

	lines = append(lines, outputLines(output, true, false)...)
	lines = append(lines, tuirender.Plain(""))
	return lines
}

func describeParsedCommand(cmd tools.ParsedCommand) string {
	switch cmd.Kind {
	case tools.ParsedRead:
		return fmt.Sprintf("📖 %s", cmd.Name)
	case tools.ParsedListFiles:
		if cmd.Path != "" {
			return fmt.Sprintf("📂 %s", cmd.Path)
		}
		return fmt.Sprintf("📂 %s", joinCommandSafe(cmd.Cmd))
	case tools.ParsedSearch:
		switch {
		case cmd.Query != "" && cmd.Path != "":
			return fmt.Sprintf("🔎 %s in %s", cmd.Query, cmd.Path)
		case cmd.Query != "":
			return fmt.Sprintf("🔎 %s", cmd.Query)
		case cmd.Path != "":
			return fmt.Sprintf("🔎 %s", cmd.Path)
		default:
			return fmt.Sprintf("🔎 %s", joinCommandSafe(cmd.Cmd))
		}
	case tools.ParsedFormat:
		return "✨ Formatting"
	case tools.ParsedTest:
		return fmt.Sprintf("🧪 %s", joinCommandSafe(cmd.Cmd))
	case tools.ParsedLint:
		return fmt.Sprintf("🧹 %s", joinCommandSafe(cmd.Cmd))
	default:
		return fmt.Sprintf("⌨️ %s", joinCommandSafe(cmd.Cmd))
	}
}

// execCommandGenericLines is the fallback path for unrecognized commands:
// the escaped invocation under a banner, with output always shown.
func execCommandGenericLines(command []string, output *CommandOutput) []tuirender.Line {
	escaped := stripBashLCAndEscape(command)

	var lines []tuirender.Line
	cmdLines := strings.Split(escaped, "\n")
	if len(cmdLines) > 0 && escaped != "" {
		lines = append(lines, tuirender.Line{Spans: []tuirender.Span{
			{Text: "⚡ Ran command ", Style: magentaStyle},
			{Text: cmdLines[0]},
		}})
		for _, cont := range cmdLines[1:] {
			lines = append(lines, tuirender.Plain(cont))
		}
	} else {
		lines = append(lines, tuirender.Styled("⚡ Ran command", magentaStyle))
	}

	lines = append(lines, outputLines(output, false, true)...)
	lines = append(lines, tuirender.Plain(""))
	return lines
}

// stripBashLCAndEscape unwraps a `bash -lc <script>` invocation to the bare
// script; anything else is shell-escaped and re-joined.
func stripBashLCAndEscape(command []string) string {
	if len(command) == 3 && command[0] == "bash" && command[1] == "-lc" {
		return command[2]
	}
	return joinCommandSafe(command)
}

// joinCommandSafe shell-quotes the argv. Arguments a POSIX shell cannot
// represent (embedded NUL) degrade to a plain space join.
func joinCommandSafe(command []string) string {
	for _, arg := range command {
		if strings.ContainsRune(arg, 0) {
			return strings.Join(command, " ")
		}
	}
	return shellquote.Join(command...)
}
