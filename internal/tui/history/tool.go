package history

import (
	"encoding/json"
	"fmt"
	"time"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	toolServerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	toolArgsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	toolOkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	toolFailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	toolContentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	toolErrStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// NewActiveToolCall renders a tool call that has not finished yet.
func NewActiveToolCall(inv tools.ToolInvocation) *ActiveToolCallCell {
	lines := []tuirender.Line{
		{Spans: []tuirender.Span{
			{Text: "tool", Style: magentaStyle},
			{Text: " running...", Style: dimStyle},
		}},
		formatToolInvocation(inv),
		tuirender.Plain(""),
	}
	return &ActiveToolCallCell{newView(lines)}
}

// NewCompletedToolCall renders a finished tool call. When the first content
// block is a decodable image the result becomes an image cell; any decode
// failure falls back to the ordinary text rendering below, never an error.
func NewCompletedToolCall(width int, inv tools.ToolInvocation, duration time.Duration, success bool, result tools.ToolCallResult) Cell {
	if cell, ok := tryCompletedToolCallImage(result); ok {
		return cell
	}

	statusText, statusStyle := "success", toolOkStyle
	if !success {
		statusText, statusStyle = "failed", toolFailStyle
	}
	lines := []tuirender.Line{
		{Spans: []tuirender.Span{
			{Text: "tool", Style: magentaStyle},
			{Text: " "},
			{Text: statusText, Style: statusStyle},
			{Text: fmt.Sprintf(", duration: %s", formatDuration(duration)), Style: grayStyle},
		}},
		formatToolInvocation(inv),
	}

	if result.Failed() {
		lines = append(lines, tuirender.Line{Spans: []tuirender.Span{
			{Text: "Error: ", Style: toolErrStyle},
			{Text: result.Err},
		}})
		lines = append(lines, tuirender.Plain(""))
		return &CompletedToolCallCell{newView(lines)}
	}

	if result.Result != nil && len(result.Result.Content) > 0 {
		lines = append(lines, tuirender.Plain(""))
		for _, block := range result.Result.Content {
			lines = append(lines, tuirender.Styled(contentBlockText(block, width), toolContentStyle))
		}
	}
	lines = append(lines, tuirender.Plain(""))
	return &CompletedToolCallCell{newView(lines)}
}

// contentBlockText maps one result content block to its display line.
func contentBlockText(block mcp.Content, width int) string {
	switch b := block.(type) {
	case mcp.TextContent:
		return formatAndTruncateToolResult(b.Text, toolCallMaxLines, width)
	case mcp.ImageContent:
		return "<image content>"
	case mcp.AudioContent:
		return "<audio content>"
	case mcp.EmbeddedResource:
		return fmt.Sprintf("embedded resource: %s", embeddedResourceURI(b))
	case mcp.ResourceLink:
		return fmt.Sprintf("link: %s", b.URI)
	default:
		return "<unknown content>"
	}
}

func embeddedResourceURI(res mcp.EmbeddedResource) string {
	switch contents := res.Resource.(type) {
	case mcp.TextResourceContents:
		return contents.URI
	case mcp.BlobResourceContents:
		return contents.URI
	default:
		return ""
	}
}

// formatToolInvocation renders `server.tool(arguments)` with compact JSON
// arguments to keep the line short but readable.
func formatToolInvocation(inv tools.ToolInvocation) tuirender.Line {
	args := ""
	if inv.Arguments != nil {
		if data, err := json.Marshal(inv.Arguments); err == nil {
			args = string(data)
		} else {
			args = fmt.Sprintf("%v", inv.Arguments)
		}
	}
	return tuirender.Line{Spans: []tuirender.Span{
		{Text: inv.Server, Style: toolServerStyle},
		{Text: "."},
		{Text: inv.Tool, Style: toolServerStyle},
		{Text: "("},
		{Text: args, Style: toolArgsStyle},
		{Text: ")"},
	}}
}
