// Package spinner is a small named-spinner registry for the redraw loop.
// Presets come from bubbles' spinner set plus a curated group of extras;
// frame selection is a pure function of the wall clock so callers can poll
// it on every redraw without holding state.
package spinner

import (
	"sort"
	"strings"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	"github.com/sahilm/fuzzy"
)

// Spinner is one animation preset.
type Spinner struct {
	Name     string
	Frames   []string
	Interval time.Duration
}

// DefaultName is the preset used when a requested name is unknown.
const DefaultName = "diamond"

var registry = buildRegistry()

func buildRegistry() map[string]Spinner {
	presets := []Spinner{
		{Name: "diamond", Frames: []string{"◇", "◆", "◇"}, Interval: 150 * time.Millisecond},
		{Name: "star", Frames: []string{"✶", "✸", "✹", "✺", "✹", "✷"}, Interval: 70 * time.Millisecond},
		{Name: "pipe", Frames: []string{"┤", "┘", "┴", "└", "├", "┌", "┬", "┐"}, Interval: 100 * time.Millisecond},
		{Name: "toggle", Frames: []string{"⊶", "⊷"}, Interval: 120 * time.Millisecond},
		{Name: "arrow3", Frames: []string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"}, Interval: 80 * time.Millisecond},
		{Name: "growVertical", Frames: []string{"▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃"}, Interval: 120 * time.Millisecond},
		{Name: "bouncingBar", Frames: []string{"[    ]", "[=   ]", "[==  ]", "[=== ]", "[ ===]", "[  ==]", "[   =]", "[    ]", "[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]"}, Interval: 80 * time.Millisecond},
		{Name: "bouncingBall", Frames: []string{"( ●    )", "(  ●   )", "(   ●  )", "(    ● )", "(     ●)", "(    ● )", "(   ●  )", "(  ●   )", "( ●    )", "(●     )"}, Interval: 80 * time.Millisecond},
		{Name: "clock", Frames: []string{"🕛", "🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚"}, Interval: 100 * time.Millisecond},
		{Name: "simpleDotsScrolling", Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "}, Interval: 200 * time.Millisecond},
		fromBubbles("line", bspinner.Line),
		fromBubbles("dots", bspinner.Dot),
		fromBubbles("minidot", bspinner.MiniDot),
		fromBubbles("jump", bspinner.Jump),
		fromBubbles("pulse", bspinner.Pulse),
		fromBubbles("points", bspinner.Points),
		fromBubbles("globe", bspinner.Globe),
		fromBubbles("moon", bspinner.Moon),
		fromBubbles("monkey", bspinner.Monkey),
		fromBubbles("meter", bspinner.Meter),
		fromBubbles("hamburger", bspinner.Hamburger),
		fromBubbles("ellipsis", bspinner.Ellipsis),
	}

	out := make(map[string]Spinner, len(presets))
	for _, s := range presets {
		out[strings.ToLower(s.Name)] = s
	}
	return out
}

// fromBubbles adapts a bubbles preset; its FPS field is the frame interval.
func fromBubbles(name string, src bspinner.Spinner) Spinner {
	return Spinner{
		Name:     name,
		Frames:   append([]string(nil), src.Frames...),
		Interval: src.FPS,
	}
}

// Default returns the default preset.
func Default() Spinner {
	return registry[DefaultName]
}

// Get looks a preset up by name, case-insensitively, falling back to the
// default for unknown names.
func Get(name string) Spinner {
	if s, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return Default()
}

// Names lists all registered preset names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, s := range registry {
		out = append(out, s.Name)
	}
	sort.Strings(out)
	return out
}

// Search returns preset names fuzzy-matching the query, best match first.
// An empty query returns every name.
func Search(query string) []string {
	names := Names()
	if strings.TrimSpace(query) == "" {
		return names
	}
	matches := fuzzy.Find(query, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// Frame picks the spinner frame for the given instant. Pure: repeated calls
// with the same timestamp return the same frame.
func Frame(s Spinner, now time.Time) string {
	if len(s.Frames) == 0 {
		return ""
	}
	interval := s.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	idx := (now.UnixMilli() / interval.Milliseconds()) % int64(len(s.Frames))
	if idx < 0 {
		idx += int64(len(s.Frames))
	}
	return s.Frames[idx]
}
