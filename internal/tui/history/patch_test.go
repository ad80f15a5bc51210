package history

import (
	"strings"
	"testing"

	"coder-cli/internal/tools"
	tuirender "coder-cli/internal/tui/render"
)

func stubSummary(title string, changes map[string]tools.FileChange) []tuirender.Line {
	lines := []tuirender.Line{tuirender.Plain(title)}
	for path := range changes {
		lines = append(lines, tuirender.Plain("  "+path))
	}
	return lines
}

func TestPatchEventApprovalRequest(t *testing.T) {
	changes := map[string]tools.FileChange{
		"main.go": {Kind: tools.FileUpdate},
	}
	cell := NewPatchEvent(PatchApprovalRequest, changes, stubSummary)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if plain[0] != "proposed patch" {
		t.Fatalf("title = %q", plain[0])
	}
	if plain[1] != "  main.go" {
		t.Fatalf("summary line = %q", plain[1])
	}
	if plain[len(plain)-1] != "" {
		t.Fatalf("expected trailing blank line")
	}
}

func TestPatchEventAutoApproved(t *testing.T) {
	cell := NewPatchEvent(PatchApplyAutoApproved, nil, stubSummary)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if plain[0] != "✏️ Applying patch" {
		t.Fatalf("title = %q", plain[0])
	}
}

func TestPatchEventManualApprovedIsFixedBanner(t *testing.T) {
	// The summary was already shown with the approval request, so the
	// manual-approval apply never calls the summary func.
	called := false
	summary := func(title string, changes map[string]tools.FileChange) []tuirender.Line {
		called = true
		return stubSummary(title, changes)
	}
	cell := NewPatchEvent(PatchApplyManualApproved, map[string]tools.FileChange{"a.go": {}}, summary)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if len(plain) != 2 || plain[0] != "✏️ Applying patch" || plain[1] != "" {
		t.Fatalf("manual approval banner = %v", plain)
	}
	if called {
		t.Fatalf("summary func must not run for a manually approved apply")
	}
}

func TestPatchEventNilSummary(t *testing.T) {
	cell := NewPatchEvent(PatchApprovalRequest, nil, nil)
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if plain[0] != "proposed patch" {
		t.Fatalf("title without summary func = %q", plain[0])
	}
}

func TestPatchApplyFailureShortStderr(t *testing.T) {
	cell := NewPatchApplyFailure("bad hunk\nat line 3\n")
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if plain[0] != "✘ Failed to apply patch" {
		t.Fatalf("title = %q", plain[0])
	}
	if plain[1] != "  ⎿ bad hunk" {
		t.Fatalf("first stderr line = %q", plain[1])
	}
	if plain[2] != "    at line 3" {
		t.Fatalf("second stderr line = %q", plain[2])
	}
	if strings.Contains(strings.Join(plain, "\n"), "+") {
		t.Fatalf("short stderr should not be elided: %v", plain)
	}
}

func TestPatchApplyFailureLongStderr(t *testing.T) {
	cell := NewPatchApplyFailure(numberedOutput(9))
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())

	if plain[1] != "  ⎿ line 1" || plain[5] != "    line 5" {
		t.Fatalf("excerpt lines wrong: %v", plain)
	}
	if plain[6] != "" {
		t.Fatalf("expected blank line before elision, got %q", plain[6])
	}
	if plain[7] != "... +4 lines" {
		t.Fatalf("elision line = %q", plain[7])
	}
	if strings.Contains(strings.Join(plain, "\n"), "line 6") {
		t.Fatalf("lines past the excerpt must not render: %v", plain)
	}
}

func TestPatchApplyFailureEmptyStderr(t *testing.T) {
	cell := NewPatchApplyFailure("   \n")
	plain := tuirender.LinesToPlainStrings(cell.PlainLines())
	if len(plain) != 2 || plain[0] != "✘ Failed to apply patch" || plain[1] != "" {
		t.Fatalf("empty stderr rendering = %v", plain)
	}
}
