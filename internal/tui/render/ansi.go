package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// sgrState 跟踪 SGR 属性，转换为 lipgloss 样式。
type sgrState struct {
	bold   bool
	faint  bool
	italic bool
	strike bool
	fg     string
}

func (s sgrState) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.bold {
		st = st.Bold(true)
	}
	if s.faint {
		st = st.Faint(true)
	}
	if s.italic {
		st = st.Italic(true)
	}
	if s.strike {
		st = st.Strikethrough(true)
	}
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	return st
}

// AnsiEscapeLine 将含 ANSI 转义的单行原始输出解码为样式化 Span。
// 非 SGR 序列（光标移动、OSC 等）被丢弃，仅保留可见文本与颜色属性。
func AnsiEscapeLine(raw string) Line {
	raw = strings.TrimRight(raw, "\r")

	var (
		line  Line
		text  strings.Builder
		state sgrState
		dec   byte
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		line.Spans = append(line.Spans, Span{Text: text.String(), Style: state.style()})
		text.Reset()
	}

	rest := raw
	for len(rest) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(rest, dec, nil)
		if n == 0 {
			break
		}
		if width > 0 {
			text.WriteString(seq)
		} else if strings.HasPrefix(seq, "\x1b[") && strings.HasSuffix(seq, "m") {
			flush()
			state = applySGR(state, seq[2:len(seq)-1])
		}
		dec = newState
		rest = rest[n:]
	}
	flush()

	if len(line.Spans) == 0 {
		line.Spans = []Span{{Text: ""}}
	}
	return line
}

// AnsiEscapeLines 按行解码多行输出。
func AnsiEscapeLines(raw string) []Line {
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil
	}
	var out []Line
	for _, l := range strings.Split(raw, "\n") {
		out = append(out, AnsiEscapeLine(l))
	}
	return out
}

func applySGR(state sgrState, params string) sgrState {
	if params == "" {
		return sgrState{}
	}
	fields := strings.FieldsFunc(params, func(r rune) bool { return r == ';' || r == ':' })
	for i := 0; i < len(fields); i++ {
		code, err := strconv.Atoi(fields[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			state = sgrState{}
		case code == 1:
			state.bold = true
		case code == 2:
			state.faint = true
		case code == 3:
			state.italic = true
		case code == 9:
			state.strike = true
		case code == 22:
			state.bold, state.faint = false, false
		case code == 23:
			state.italic = false
		case code == 29:
			state.strike = false
		case code >= 30 && code <= 37:
			state.fg = strconv.Itoa(code - 30)
		case code == 38:
			var consumed int
			state.fg, consumed = extendedColor(fields[i+1:])
			i += consumed
		case code == 39:
			state.fg = ""
		case code == 48:
			// 背景色不保留，但必须跳过其扩展参数，否则会被误读为属性码。
			_, consumed := extendedColor(fields[i+1:])
			i += consumed
		case code >= 90 && code <= 97:
			state.fg = strconv.Itoa(code - 90 + 8)
		}
	}
	return state
}

// extendedColor 解析 38;5;n 与 38;2;r;g;b 两种扩展颜色参数。
func extendedColor(fields []string) (string, int) {
	if len(fields) == 0 {
		return "", 0
	}
	switch fields[0] {
	case "5":
		if len(fields) >= 2 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n >= 0 && n <= 255 {
				return strconv.Itoa(n), 2
			}
		}
		return "", len(fields)
	case "2":
		if len(fields) >= 4 {
			r, errR := strconv.Atoi(fields[1])
			g, errG := strconv.Atoi(fields[2])
			b, errB := strconv.Atoi(fields[3])
			if errR == nil && errG == nil && errB == nil {
				return fmt.Sprintf("#%02x%02x%02x", r&0xff, g&0xff, b&0xff), 4
			}
		}
		return "", len(fields)
	default:
		return "", 0
	}
}
