package history

import (
	"fmt"
	"strings"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

// planBarWidth is the fixed glyph width of the progress bar.
const planBarWidth = 10

var (
	planBarFilledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	planBarEmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	planCompletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true).Faint(true)
	planInProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	planPendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	planNoteStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	planCheckStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// NewPlanUpdate renders the model's plan as a checkbox todo list under a
// progress bar header.
func NewPlanUpdate(update tools.UpdatePlanArgs) *PlanUpdateCell {
	total := len(update.Plan)
	completed := 0
	for _, item := range update.Plan {
		if item.Status == tools.StepCompleted {
			completed++
		}
	}

	filled := 0
	if total > 0 {
		// Round to nearest with integer arithmetic.
		filled = (completed*planBarWidth + total/2) / total
	}
	empty := planBarWidth - filled

	header := []tuirender.Span{
		{Text: "📋"},
		{Text: " Updated", Style: magentaStyle.Bold(true)},
		{Text: " to do list ["},
	}
	if filled > 0 {
		header = append(header, tuirender.Span{Text: strings.Repeat("█", filled), Style: planBarFilledStyle})
	}
	if empty > 0 {
		header = append(header, tuirender.Span{Text: strings.Repeat("░", empty), Style: planBarEmptyStyle})
	}
	header = append(header,
		tuirender.Span{Text: "] "},
		tuirender.Span{Text: fmt.Sprintf("%d/%d", completed, total)},
	)
	lines := []tuirender.Line{{Spans: header}}

	if note := strings.TrimSpace(update.Explanation); note != "" {
		lines = append(lines, tuirender.Styled("note", planNoteStyle))
		for _, l := range strings.Split(note, "\n") {
			lines = append(lines, tuirender.Styled(l, grayStyle))
		}
	}

	if total == 0 {
		lines = append(lines, tuirender.Styled("(no steps provided)", planNoteStyle))
	} else {
		for idx, item := range update.Plan {
			lines = append(lines, planStepLine(item, idx == 0))
		}
	}

	lines = append(lines, tuirender.Plain(""))
	return &PlanUpdateCell{newView(lines)}
}

func planStepLine(item tools.PlanItem, first bool) tuirender.Line {
	boxText, boxStyle := "□", lipgloss.NewStyle()
	stepStyle := planPendingStyle
	switch item.Status {
	case tools.StepCompleted:
		boxText, boxStyle = "✔", planCheckStyle
		stepStyle = planCompletedStyle
	case tools.StepInProgress:
		stepStyle = planInProgressStyle
	}

	prefix := "    "
	if first {
		prefix = "  ⎿ "
	}
	return tuirender.Line{Spans: []tuirender.Span{
		{Text: prefix},
		{Text: boxText, Style: boxStyle},
		{Text: " "},
		{Text: item.Step, Style: stepStyle},
	}}
}
