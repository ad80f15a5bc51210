package history

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	// Registered for the container sniffing done by image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"coder-cli/internal/logger"
	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/mark3labs/mcp-go/mcp"
	xdraw "golang.org/x/image/draw"
)

// maxImageRows caps how tall an image cell may grow regardless of source size.
const maxImageRows = 20

// CompletedToolCallImageCell holds a decoded tool-result image. The raster
// is rescaled to the render width lazily and cached per width: the scroll
// view asks for the height first and paints right after, and the rescale
// must not run twice for that round trip.
type CompletedToolCallImageCell struct {
	img image.Image

	mu      sync.Mutex
	renders map[int][]tuirender.Line
}

func newCompletedToolCallImage(img image.Image) *CompletedToolCallImageCell {
	return &CompletedToolCallImageCell{img: img, renders: make(map[int][]tuirender.Line)}
}

// tryCompletedToolCallImage attempts the image path for a tool result:
// base64 decode, container sniff, raster decode. Every failure is logged
// and reported as "not an image" so the caller falls back to text rendering.
func tryCompletedToolCallImage(result tools.ToolCallResult) (*CompletedToolCallImageCell, bool) {
	if result.Failed() || result.Result == nil || len(result.Result.Content) == 0 {
		return nil, false
	}
	block, ok := result.Result.Content[0].(mcp.ImageContent)
	if !ok {
		return nil, false
	}

	raw, err := base64.StdEncoding.DecodeString(block.Data)
	if err != nil {
		logger.Named("history").Errorf("failed to decode image data: %v", err)
		return nil, false
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		logger.Named("history").Errorf("image decoding failed: %v", err)
		return nil, false
	}
	logger.Named("history").Infof("decoded %s tool result image", format)
	return newCompletedToolCallImage(img), true
}

// PlainLines is the placeholder used when flattening to plain scrollback;
// the raster is never embedded there.
func (c *CompletedToolCallImageCell) PlainLines() []tuirender.Line {
	return []tuirender.Line{
		tuirender.Plain("tool result (image output omitted)"),
		tuirender.Plain(""),
	}
}

func (c *CompletedToolCallImageCell) DesiredHeight(width int) int {
	return len(c.RenderLines(width))
}

// RenderLines returns the half-block raster for the given width, computing
// it at most once per width for the cell's lifetime.
func (c *CompletedToolCallImageCell) RenderLines(width int) []tuirender.Line {
	if width <= 0 {
		width = 80
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if lines, ok := c.renders[width]; ok {
		return lines
	}
	lines := rasterize(c.img, width)
	c.renders[width] = lines
	return lines
}

// rasterize scales the image to the cell grid and renders it with upper
// half-block glyphs: every terminal row carries two pixel rows, the top one
// as foreground and the bottom one as background.
func rasterize(img image.Image, width int) []tuirender.Line {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return []tuirender.Line{tuirender.Plain("")}
	}

	cols := width
	if srcW < cols {
		cols = srcW
	}
	// Terminal cells are roughly twice as tall as wide; one row is two pixels.
	rows := (srcH*cols/srcW + 1) / 2
	if rows > maxImageRows {
		cols = cols * maxImageRows / rows
		if cols < 1 {
			cols = 1
		}
		rows = maxImageRows
	}
	if rows < 1 {
		rows = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)

	lines := make([]tuirender.Line, 0, rows+1)
	for row := 0; row < rows; row++ {
		spans := make([]tuirender.Span, 0, cols)
		for col := 0; col < cols; col++ {
			top := scaled.RGBAAt(col, row*2)
			bottom := scaled.RGBAAt(col, row*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			spans = append(spans, tuirender.Span{Text: "▀", Style: style})
		}
		lines = append(lines, tuirender.Line{Spans: spans})
	}
	lines = append(lines, tuirender.Plain(""))
	return lines
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
