package render

import (
	"github.com/mattn/go-runewidth"
)

// styledRune 记录单个 rune 及其来源 Span，重建行时保持样式边界。
type styledRune struct {
	r    rune
	w    int
	span int
}

// WrapLine 将单行按终端宽度换行，优先在空格处断行，超宽词按字符硬切。
// 空行恒返回一行；Span 样式在拆分后保持不变。
func WrapLine(line Line, width int) []Line {
	if width <= 0 {
		return []Line{LineToStatic(line)}
	}
	runes := flattenLine(line)
	if len(runes) == 0 {
		return []Line{{Style: line.Style}}
	}

	var rows [][]styledRune
	start := 0
	for start < len(runes) {
		// 换行产生的新行不保留行首空格；首行缩进原样保留。
		if start > 0 {
			for start < len(runes) && runes[start].r == ' ' {
				start++
			}
			if start >= len(runes) {
				break
			}
		}
		w := 0
		end := start
		lastSpace := -1
		for end < len(runes) {
			rw := runes[end].w
			if w+rw > width && end > start {
				break
			}
			if runes[end].r == ' ' {
				lastSpace = end
			}
			w += rw
			end++
		}
		if end >= len(runes) {
			rows = append(rows, runes[start:end])
			break
		}
		if lastSpace > start {
			// 断行处的空格本身不渲染。
			rows = append(rows, runes[start:lastSpace])
			start = lastSpace + 1
		} else {
			rows = append(rows, runes[start:end])
			start = end
		}
	}

	out := make([]Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, rebuildLine(line, row))
	}
	if len(out) == 0 {
		out = append(out, Line{Style: line.Style})
	}
	return out
}

// WrapLines 依次换行各行并拼接；结果行数即绘制时占用的终端行数。
func WrapLines(lines []Line, width int) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, WrapLine(l, width)...)
	}
	return out
}

// CountWrappedRows 返回按给定宽度绘制时的总行数。
// 与 WrapLines 使用同一换行算法，保证高度与实际绘制一致。
func CountWrappedRows(lines []Line, width int) int {
	n := 0
	for _, l := range lines {
		n += len(WrapLine(l, width))
	}
	return n
}

func flattenLine(line Line) []styledRune {
	var out []styledRune
	for i, sp := range line.Spans {
		for _, r := range sp.Text {
			out = append(out, styledRune{r: r, w: runewidth.RuneWidth(r), span: i})
		}
	}
	return out
}

func rebuildLine(src Line, row []styledRune) Line {
	if len(row) == 0 {
		return Line{Style: src.Style}
	}
	var spans []Span
	cur := row[0].span
	text := make([]rune, 0, len(row))
	for _, sr := range row {
		if sr.span != cur {
			spans = append(spans, Span{Text: string(text), Style: src.Spans[cur].Style})
			cur = sr.span
			text = text[:0]
		}
		text = append(text, sr.r)
	}
	spans = append(spans, Span{Text: string(text), Style: src.Spans[cur].Style})
	return Line{Spans: spans, Style: src.Style}
}
