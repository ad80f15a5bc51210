package history

import (
	"fmt"
	"strings"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"
)

// PatchEventType distinguishes why a patch is being shown.
type PatchEventType string

const (
	// PatchApprovalRequest asks the user to approve a proposed patch.
	PatchApprovalRequest PatchEventType = "approval_request"
	// PatchApplyAutoApproved announces an apply that needed no approval.
	PatchApplyAutoApproved PatchEventType = "apply_auto_approved"
	// PatchApplyManualApproved announces an apply the user just approved.
	PatchApplyManualApproved PatchEventType = "apply_manual_approved"
)

// DiffSummaryFunc produces pre-built summary lines for a patch's file
// changes. Diff computation lives outside this package; the cell only
// adopts whatever lines the collaborator returns.
type DiffSummaryFunc func(title string, changes map[string]tools.FileChange) []tuirender.Line

// NewPatchEvent renders a pending or starting patch. Approval requests and
// auto-approved applies show the file-level diff summary; a manually
// approved apply shows only a fixed banner since its summary was already on
// screen with the approval request.
func NewPatchEvent(event PatchEventType, changes map[string]tools.FileChange, summary DiffSummaryFunc) *PendingPatchCell {
	var title string
	switch event {
	case PatchApprovalRequest:
		title = "proposed patch"
	case PatchApplyAutoApproved:
		title = "✏️ Applying patch"
	default:
		lines := []tuirender.Line{
			tuirender.Styled("✏️ Applying patch", magentaStyle.Bold(true)),
			tuirender.Plain(""),
		}
		return &PendingPatchCell{newView(lines)}
	}

	var lines []tuirender.Line
	if summary != nil {
		lines = append(lines, summary(title, changes)...)
	} else {
		lines = append(lines, tuirender.Styled(title, magentaStyle.Bold(true)))
	}
	lines = append(lines, tuirender.Plain(""))
	return &PendingPatchCell{newView(lines)}
}

// NewPatchApplyFailure renders a failed patch application with a bounded
// stderr excerpt.
func NewPatchApplyFailure(stderr string) *PatchApplyResultCell {
	lines := []tuirender.Line{
		tuirender.Styled("✘ Failed to apply patch", magentaStyle.Bold(true)),
	}

	if strings.TrimSpace(stderr) != "" {
		errLines := splitLines(stderr)
		shown := len(errLines)
		if shown > toolCallMaxLines {
			shown = toolCallMaxLines
		}
		for i, raw := range errLines[:shown] {
			lines = append(lines, outputLine(raw, i == 0))
		}
		if remaining := len(errLines) - shown; remaining > 0 {
			lines = append(lines, tuirender.Plain(""))
			lines = append(lines, dimAll(tuirender.Plain(fmt.Sprintf("... +%d lines", remaining))))
		}
	}

	lines = append(lines, tuirender.Plain(""))
	return &PatchApplyResultCell{newView(lines)}
}
