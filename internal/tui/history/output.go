package history

import (
	"fmt"
	"strings"

	tuirender "coder-cli/internal/tui/render"
)

// toolCallMaxLines is the visible line budget M: at most M head lines and M
// tail lines of output are shown, with an elision marker in between.
const toolCallMaxLines = 5

// CommandOutput is the snapshot captured once when a command finishes.
type CommandOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// outputLines renders command output in dimmed, indented form. onlyErr
// suppresses output entirely for successful commands. The stream shown is
// stdout for exit code 0 and stderr otherwise; the other stream is dropped.
func outputLines(output *CommandOutput, onlyErr, includeMarker bool) []tuirender.Line {
	if output == nil {
		return nil
	}
	if onlyErr && output.ExitCode == 0 {
		return nil
	}

	src := output.Stdout
	if output.ExitCode != 0 {
		src = output.Stderr
	}
	srcLines := splitLines(src)
	lineCount := len(srcLines)
	if lineCount == 0 {
		return nil
	}

	decoded := make([]tuirender.Line, 0, lineCount)
	for _, raw := range srcLines {
		decoded = append(decoded, tuirender.AnsiEscapeLine(raw))
	}

	initial := tuirender.Span{Text: "    "}
	if includeMarker {
		initial = tuirender.Span{Text: "  ⎿ "}
	}
	cont := tuirender.Span{Text: "    "}

	truncateAt := 2 * toolCallMaxLines
	if lineCount <= truncateAt {
		return dimLines(tuirender.PrefixLines(decoded, initial, cont))
	}

	lines := dimLines(tuirender.PrefixLines(decoded[:toolCallMaxLines], initial, cont))
	marker := tuirender.Plain(fmt.Sprintf("... %d lines truncated ...", lineCount-truncateAt))
	lines = append(lines, dimAll(prefixed(marker, false)))
	lines = append(lines, dimLines(tuirender.PrefixLines(decoded[lineCount-toolCallMaxLines:], cont, cont))...)
	return lines
}

func dimLines(lines []tuirender.Line) []tuirender.Line {
	for i := range lines {
		lines[i] = dimAll(lines[i])
	}
	return lines
}

func outputLine(raw string, marked bool) tuirender.Line {
	return dimAll(prefixed(tuirender.AnsiEscapeLine(raw), marked))
}

func prefixed(line tuirender.Line, marked bool) tuirender.Line {
	prefix := "    "
	if marked {
		prefix = "  ⎿ "
	}
	spans := make([]tuirender.Span, 0, len(line.Spans)+1)
	spans = append(spans, tuirender.Span{Text: prefix})
	spans = append(spans, line.Spans...)
	return tuirender.Line{Spans: spans, Style: line.Style}
}

// splitLines mirrors line iteration over raw output: no lines for an empty
// stream, and a trailing newline does not produce a trailing empty line.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	src = strings.TrimSuffix(src, "\n")
	if src == "" {
		return []string{""}
	}
	return strings.Split(src, "\n")
}
