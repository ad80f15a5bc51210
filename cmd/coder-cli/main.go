package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"coder-cli/internal/config"
	"coder-cli/internal/logger"
	"coder-cli/internal/tui/history"
	"coder-cli/internal/tui/render"
	"coder-cli/internal/tui/spinner"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	logger.Configure()
	cfg, err := config.Load("")
	if err != nil {
		logger.Warnf("failed to load config: %v", err)
		cfg = config.Default()
	}
	cfg = config.ApplyKVOverrides(cfg, os.Args[1:])
	if logFile, _, err := logger.SetupFile(cfg.LogPath); err != nil {
		logger.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Errorf("program exited with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// redrawInterval drives the pull-based animation: the welcome cell and the
// spinner hold no timers of their own, they are simply re-queried here.
const redrawInterval = 50 * time.Millisecond

type tickMsg time.Time

type model struct {
	cells   []history.Cell
	welcome *history.AnimatedWelcomeCell
	spin    spinner.Spinner
	vp      viewport.Model
	width   int
	ready   bool
}

func newModel(cfg config.Config) *model {
	welcome, cells := sampleTranscript(cfg)
	return &model{
		cells:   cells,
		welcome: welcome,
		spin:    spinner.Get(cfg.Spinner),
	}
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 1
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	case tickMsg:
		// Repaints re-query the welcome cell; once its latch fires the
		// frame is static and only the footer spinner still moves.
		m.refresh()
		return m, tick()
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refresh re-materializes every cell at the current width. Heights come
// from the cells themselves; the viewport only sees flat strings.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	stick := m.vp.AtBottom()
	m.vp.SetContent(strings.Join(m.renderLines(), "\n"))
	if stick {
		m.vp.GotoBottom()
	}
}

func (m *model) renderLines() []string {
	var out []string
	for _, cell := range m.cells {
		var lines []render.Line
		switch c := cell.(type) {
		case *history.AnimatedWelcomeCell:
			lines = c.Frame(m.width)
		case *history.CompletedToolCallImageCell:
			lines = c.RenderLines(m.width)
		default:
			lines = render.WrapLines(c.PlainLines(), m.width)
		}
		if got, want := len(lines), cell.DesiredHeight(m.width); got != want {
			logger.Warnf("cell height mismatch: reported %d, painted %d", want, got)
		}
		out = append(out, render.LinesToStrings(lines)...)
	}
	return out
}

var footerStyle = lipgloss.NewStyle().Faint(true)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	footer := footerStyle.Render(fmt.Sprintf("%s transcript demo (q to quit)", spinner.Frame(m.spin, time.Now())))
	return m.vp.View() + "\n" + footer
}
