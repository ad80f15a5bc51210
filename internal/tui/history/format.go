package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// formatDuration renders an elapsed time compactly: milliseconds under a
// second, fractional seconds under a minute, minutes and seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) - mins*60
	return fmt.Sprintf("%dm%02ds", mins, secs)
}

// formatAndTruncateToolResult flattens tool text output into a single
// display line bounded by maxLines rows worth of the given width. JSON
// payloads are compacted first so the budget is spent on content.
func formatAndTruncateToolResult(text string, maxLines, width int) string {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(trimmed)); err == nil {
			trimmed = buf.String()
		}
	}
	flat := strings.Join(strings.Fields(trimmed), " ")

	budget := maxLines * width
	if budget <= 0 {
		budget = maxLines * 80
	}
	if runewidth.StringWidth(flat) > budget {
		flat = runewidth.Truncate(flat, budget, "…")
	}
	return flat
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	head := strings.ToUpper(string(runes[0]))
	tail := strings.ToLower(string(runes[1:]))
	return head + tail
}

func prettyProviderName(id string) string {
	if strings.EqualFold(id, "openai") {
		return "OpenAI"
	}
	return titleCase(id)
}
