package history

import (
	"fmt"
	"strings"

	"coder-cli/internal/session"
	tuirender "coder-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

var (
	magentaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	primaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
	grayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	italicStyle    = lipgloss.NewStyle().Italic(true)
	errorIconStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	boldStyle      = lipgloss.NewStyle().Bold(true)
)

// dimAll 为行内全部 Span 追加 Faint 修饰。
func dimAll(line tuirender.Line) tuirender.Line {
	for i := range line.Spans {
		line.Spans[i].Style = line.Spans[i].Style.Faint(true)
	}
	return line
}

// NewUserPrompt renders a message typed by the user.
func NewUserPrompt(message string) *UserPromptCell {
	lines := []tuirender.Line{tuirender.Styled("user", primaryStyle)}
	for _, l := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		lines = append(lines, tuirender.Plain(l))
	}
	lines = append(lines, tuirender.Plain(""))
	return &UserPromptCell{newView(lines)}
}

// NewBackgroundEvent renders an informational event from the engine.
func NewBackgroundEvent(message string) *BackgroundEventCell {
	lines := []tuirender.Line{tuirender.Styled("event", dimStyle)}
	for _, l := range tuirender.AnsiEscapeLines(message) {
		lines = append(lines, dimAll(l))
	}
	lines = append(lines, tuirender.Plain(""))
	return &BackgroundEventCell{newView(lines)}
}

// NewDiffOutput renders the result of the /diff command. The diff text is
// computed upstream; this cell only decodes its ANSI styling.
func NewDiffOutput(message string) *DiffOutputCell {
	lines := []tuirender.Line{tuirender.Styled("/diff", magentaStyle)}
	if strings.TrimSpace(message) == "" {
		lines = append(lines, tuirender.Styled("No changes detected.", italicStyle))
	} else {
		lines = append(lines, tuirender.AnsiEscapeLines(message)...)
	}
	lines = append(lines, tuirender.Plain(""))
	return &DiffOutputCell{newView(lines)}
}

// NewReasoningOutput renders the result of the /reasoning command.
func NewReasoningOutput(effort string) *ReasoningOutputCell {
	lines := []tuirender.Line{
		tuirender.Styled("/reasoning", magentaStyle),
		{Spans: []tuirender.Span{
			{Text: "Reasoning effort changed to: "},
			{Text: effort, Style: boldStyle},
		}},
		tuirender.Plain(""),
	}
	return &ReasoningOutputCell{newView(lines)}
}

// NewPromptsOutput renders the fixed /prompts starter list.
func NewPromptsOutput() *PromptsOutputCell {
	lines := []tuirender.Line{
		tuirender.Styled("/prompts", magentaStyle),
		tuirender.Plain(""),
		tuirender.Plain(" 1. Explain this codebase"),
		tuirender.Plain(" 2. Summarize recent commits"),
		tuirender.Plain(" 3. Implement {feature}"),
		tuirender.Plain(" 4. Find and fix a bug in @filename"),
		tuirender.Plain(" 5. Write tests for @filename"),
		tuirender.Plain(" 6. Improve documentation in @filename"),
		tuirender.Plain(""),
	}
	return &PromptsOutputCell{newView(lines)}
}

// NewErrorEvent renders a backend error.
func NewErrorEvent(message string) *ErrorEventCell {
	lines := []tuirender.Line{
		{Spans: []tuirender.Span{
			{Text: "🖐 ", Style: errorIconStyle},
			{Text: message},
		}},
		tuirender.Plain(""),
	}
	return &ErrorEventCell{newView(lines)}
}

// NewSessionInfo renders session start information. The first event shows a
// short command hint block; later events only surface a model mismatch.
func NewSessionInfo(cfg session.Config, ev session.ConfiguredEvent, isFirstEvent bool) Cell {
	if isFirstEvent {
		lines := []tuirender.Line{
			tuirender.Styled("", dimStyle),
			tuirender.Styled(" Popular commands:", dimStyle),
			tuirender.Styled(" /status - show session configuration and token usage", dimStyle),
			tuirender.Styled(" /diff - show git diff of the working tree", dimStyle),
			tuirender.Styled(" /prompts - show example prompts", dimStyle),
			tuirender.Styled(" /reasoning - change reasoning effort", dimStyle),
			tuirender.Styled("", dimStyle),
		}
		return &WelcomeMessageCell{newView(lines)}
	}
	if cfg.Model == ev.Model {
		return &SessionInfoCell{newView(nil)}
	}
	lines := []tuirender.Line{
		tuirender.Styled("model changed:", magentaStyle.Bold(true)),
		tuirender.Plain(fmt.Sprintf("requested: %s", cfg.Model)),
		tuirender.Plain(fmt.Sprintf("used: %s", ev.Model)),
		tuirender.Plain(""),
	}
	return &SessionInfoCell{newView(lines)}
}
