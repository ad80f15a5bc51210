package history

import (
	tuirender "coder-cli/internal/tui/render"
)

// Cell is one renderable transcript entry. Cells are append-only: the
// transcript owns them exclusively and their fields never change after
// construction, save for the two write-once caches (the welcome animation
// latch and the image cell's per-width render).
type Cell interface {
	// PlainLines returns the cell's static line representation, suitable
	// for flattening into non-interactive scrollback.
	PlainLines() []tuirender.Line
	// DesiredHeight reports the number of terminal rows the cell occupies
	// when painted at the given width. It is computed with the same wrap
	// used for painting, so height and paint never disagree.
	DesiredHeight(width int) int
}

// view 持有构造时生成的不可变行序列，是所有非动画 Cell 的公共实现。
type view struct {
	lines []tuirender.Line
}

func newView(lines []tuirender.Line) view {
	return view{lines: lines}
}

func (v view) PlainLines() []tuirender.Line {
	out := make([]tuirender.Line, 0, len(v.lines))
	tuirender.PushOwnedLines(v.lines, &out)
	return out
}

func (v view) DesiredHeight(width int) int {
	return tuirender.CountWrappedRows(v.lines, width)
}

// The closed set of view-backed cell kinds. One constructor per event kind;
// adding a kind means adding a type here and its constructor alongside.
type (
	WelcomeMessageCell    struct{ view }
	UserPromptCell        struct{ view }
	ActiveToolCallCell    struct{ view }
	CompletedToolCallCell struct{ view }
	BackgroundEventCell   struct{ view }
	DiffOutputCell        struct{ view }
	ReasoningOutputCell   struct{ view }
	StatusOutputCell      struct{ view }
	PromptsOutputCell     struct{ view }
	ErrorEventCell        struct{ view }
	SessionInfoCell       struct{ view }
	PendingPatchCell      struct{ view }
	PlanUpdateCell        struct{ view }
	PatchApplyResultCell  struct{ view }
)
