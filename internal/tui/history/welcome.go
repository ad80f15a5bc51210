package history

import (
	"strings"
	"sync/atomic"
	"time"

	tuirender "coder-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// welcomeAnimationDuration is the wall-clock length of the intro reveal.
	welcomeAnimationDuration = 2 * time.Second
	// welcomeCanvasRows is the interior animation canvas.
	welcomeCanvasRows = 16
	// welcomeCellHeight is the fixed reported height: canvas plus borders.
	welcomeCellHeight = welcomeCanvasRows + 2
)

// AnimatedWelcomeCell plays a short intro reveal driven entirely by the
// caller's redraw polling; no timer or goroutine runs behind it. The
// completion latch is the cell's only mutable field: it flips false→true
// exactly once and never reverts, so a completed welcome stays static no
// matter how often it is re-queried.
type AnimatedWelcomeCell struct {
	start     time.Time
	completed atomic.Bool
	now       func() time.Time
}

// NewAnimatedWelcome starts the intro animation at the current time.
func NewAnimatedWelcome() *AnimatedWelcomeCell {
	return newAnimatedWelcomeAt(time.Now)
}

func newAnimatedWelcomeAt(clock func() time.Time) *AnimatedWelcomeCell {
	return &AnimatedWelcomeCell{start: clock(), now: clock}
}

// PlainLines returns the static placeholder used when flattening the
// transcript; it never reflects the animated frame.
func (c *AnimatedWelcomeCell) PlainLines() []tuirender.Line {
	return []tuirender.Line{
		tuirender.Plain(""),
		tuirender.Plain("Welcome to Coder"),
		tuirender.Plain(""),
	}
}

// DesiredHeight is fixed: the animation canvas does not reflow with width.
func (c *AnimatedWelcomeCell) DesiredHeight(width int) int {
	return welcomeCellHeight
}

// Progress returns the animation progress in [0,1]. Reaching the end of the
// animation window sets the completion latch; once set, Progress is 1.0
// forever. Safe to call from every redraw tick.
func (c *AnimatedWelcomeCell) Progress() float64 {
	if c.completed.Load() {
		return 1.0
	}
	elapsed := c.now().Sub(c.start)
	if elapsed >= welcomeAnimationDuration {
		c.completed.CompareAndSwap(false, true)
		return 1.0
	}
	return float64(elapsed) / float64(welcomeAnimationDuration)
}

// Completed reports whether the latch has fired.
func (c *AnimatedWelcomeCell) Completed() bool {
	return c.completed.Load()
}

var (
	welcomeBorderStyle = lipgloss.NewStyle().Faint(true)
	welcomeTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	welcomeNoiseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Faint(true)
	welcomeTagStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Frame paints the animation at the current progress. It always returns
// exactly welcomeCellHeight lines; after completion every call returns the
// same final static frame.
func (c *AnimatedWelcomeCell) Frame(width int) []tuirender.Line {
	if width <= 0 {
		width = 80
	}
	progress := c.Progress()

	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	lines := make([]tuirender.Line, 0, welcomeCellHeight)
	lines = append(lines, tuirender.Styled("╭"+strings.Repeat("─", inner)+"╮", welcomeBorderStyle))

	titleRow := welcomeCanvasRows/2 - 1
	revealed := int(progress * float64(welcomeCanvasRows))
	for row := 0; row < welcomeCanvasRows; row++ {
		var content tuirender.Line
		switch {
		case row == titleRow && row <= revealed:
			content = centeredLine("Welcome to Coder", inner, welcomeTitleStyle)
		case row == titleRow+2 && row <= revealed:
			content = centeredLine("press any key to get started", inner, welcomeTagStyle)
		case row == revealed && progress < 1.0:
			content = centeredLine(noiseRun(row, inner), inner, welcomeNoiseStyle)
		default:
			content = tuirender.Plain(strings.Repeat(" ", inner))
		}
		lines = append(lines, content)
	}

	lines = append(lines, tuirender.Styled("╰"+strings.Repeat("─", inner)+"╯", welcomeBorderStyle))
	return lines
}

func centeredLine(text string, width int, style lipgloss.Style) tuirender.Line {
	w := runewidth.StringWidth(text)
	if w > width {
		text = runewidth.Truncate(text, width, "")
		w = runewidth.StringWidth(text)
	}
	left := (width - w) / 2
	right := width - w - left
	return tuirender.Line{Spans: []tuirender.Span{
		{Text: strings.Repeat(" ", left)},
		{Text: text, Style: style},
		{Text: strings.Repeat(" ", right)},
	}}
}

// noiseRun is the deterministic scan-line shown at the reveal frontier.
func noiseRun(row, width int) string {
	glyphs := []rune{'░', '▒', '▓', '█', '▓', '▒'}
	n := width / 3
	if n < 1 {
		n = 1
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(glyphs[(row+i)%len(glyphs)])
	}
	return sb.String()
}
