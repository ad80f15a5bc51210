package history

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"

	"github.com/mark3labs/mcp-go/mcp"
)

func testInvocation() tools.ToolInvocation {
	return tools.ToolInvocation{
		Server:    "files",
		Tool:      "read",
		Arguments: map[string]any{"path": "main.go"},
	}
}

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 50), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func imageResult(data string) tools.ToolCallResult {
	return tools.ToolCallResult{Result: &mcp.CallToolResult{
		Content: []mcp.Content{mcp.ImageContent{Type: "image", Data: data, MIMEType: "image/png"}},
	}}
}

func TestCompletedToolCallSuccessText(t *testing.T) {
	result := tools.ToolCallResult{Result: mcp.NewToolResultText("all good")}
	cell := NewCompletedToolCall(80, testInvocation(), 420*time.Millisecond, true, result)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())

	if plain[0] != "tool success, duration: 420ms" {
		t.Fatalf("title = %q", plain[0])
	}
	if plain[1] != `files.read({"path":"main.go"})` {
		t.Fatalf("invocation = %q", plain[1])
	}
	if plain[2] != "" {
		t.Fatalf("expected blank separator before content, got %q", plain[2])
	}
	if plain[3] != "all good" {
		t.Fatalf("content = %q", plain[3])
	}
	if plain[len(plain)-1] != "" {
		t.Fatalf("expected trailing blank line, got %q", plain[len(plain)-1])
	}
}

func TestCompletedToolCallFailure(t *testing.T) {
	result := tools.ToolCallResult{Err: "connection refused"}
	cell := NewCompletedToolCall(80, testInvocation(), 3*time.Second, false, result)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())

	if plain[0] != "tool failed, duration: 3.00s" {
		t.Fatalf("title = %q", plain[0])
	}
	if plain[2] != "Error: connection refused" {
		t.Fatalf("error line = %q", plain[2])
	}
	if plain[len(plain)-1] != "" {
		t.Fatalf("failure cell must end with a blank line")
	}
}

func TestCompletedToolCallContentBlocks(t *testing.T) {
	result := tools.ToolCallResult{Result: &mcp.CallToolResult{Content: []mcp.Content{
		mcp.TextContent{Type: "text", Text: "plain text"},
		mcp.AudioContent{Type: "audio", Data: "xxxx", MIMEType: "audio/wav"},
		mcp.EmbeddedResource{Type: "resource", Resource: mcp.TextResourceContents{URI: "file:///tmp/notes.txt"}},
		mcp.ResourceLink{Type: "resource_link", URI: "https://example.com/doc", Name: "doc"},
	}}}
	cell := NewCompletedToolCall(80, testInvocation(), time.Second, true, result)
	joined := strings.Join(tuirender.LinesToPlainStrings(cell.PlainLines()), "\n")

	for _, want := range []string{
		"plain text",
		"<audio content>",
		"embedded resource: file:///tmp/notes.txt",
		"link: https://example.com/doc",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestCompletedToolCallImageDecode(t *testing.T) {
	cell := NewCompletedToolCall(80, testInvocation(), time.Second, true, imageResult(pngBase64(t, 4, 4)))
	img, ok := cell.(*CompletedToolCallImageCell)
	if !ok {
		t.Fatalf("expected image cell, got %T", cell)
	}

	plain := tuirender.LinesToPlainStrings(img.PlainLines())
	if len(plain) != 2 || plain[0] != "tool result (image output omitted)" {
		t.Fatalf("plain placeholder = %v", plain)
	}

	lines := img.RenderLines(40)
	if len(lines) < 2 {
		t.Fatalf("raster too short: %d lines", len(lines))
	}
	if got := img.DesiredHeight(40); got != len(lines) {
		t.Fatalf("DesiredHeight(40) = %d, raster has %d lines", got, len(lines))
	}
	if lines[len(lines)-1].Text() != "" {
		t.Fatalf("raster should end with a blank line")
	}
}

func TestCompletedToolCallImageRenderMemoized(t *testing.T) {
	cell, ok := tryCompletedToolCallImage(imageResult(pngBase64(t, 8, 8)))
	if !ok {
		t.Fatalf("expected image decode to succeed")
	}
	first := cell.RenderLines(30)
	again := cell.RenderLines(30)
	if &first[0] != &again[0] {
		t.Fatalf("same width should return the cached raster")
	}
	other := cell.RenderLines(60)
	if len(other) == 0 {
		t.Fatalf("second width produced no raster")
	}
}

func TestCompletedToolCallImageFallback(t *testing.T) {
	// Invalid base64 and valid base64 that is not an image both fall back
	// to the text cell without panicking.
	for _, data := range []string{"%%% not base64 %%%", base64.StdEncoding.EncodeToString([]byte("plain bytes"))} {
		cell := NewCompletedToolCall(80, testInvocation(), time.Second, true, imageResult(data))
		if _, ok := cell.(*CompletedToolCallImageCell); ok {
			t.Fatalf("data %q should not decode as an image", data)
		}
		joined := strings.Join(tuirender.LinesToPlainStrings(cell.PlainLines()), "\n")
		if !strings.Contains(joined, "<image content>") {
			t.Fatalf("fallback should show the image placeholder, got:\n%s", joined)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{59 * time.Second, "59.00s"},
		{61 * time.Second, "1m01s"},
		{2*time.Minute + 30*time.Second, "2m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatAndTruncateToolResult(t *testing.T) {
	if got := formatAndTruncateToolResult("  hello \n world  ", 5, 80); got != "hello world" {
		t.Fatalf("whitespace flatten = %q", got)
	}

	jsonIn := "{\n  \"a\": 1,\n  \"b\": [2, 3]\n}"
	if got := formatAndTruncateToolResult(jsonIn, 5, 80); got != `{"a":1,"b":[2,3]}` {
		t.Fatalf("json compact = %q", got)
	}

	long := strings.Repeat("word ", 200)
	got := formatAndTruncateToolResult(long, 2, 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if w := len([]rune(got)); w > 20 {
		t.Fatalf("truncated result too wide: %d runes", w)
	}
}
