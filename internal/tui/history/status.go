package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coder-cli/internal/auth"
	"coder-cli/internal/session"
	tuirender "coder-cli/internal/tui/render"
)

// NewStatusOutput renders the /status snapshot: workspace, optional account
// info from stored credentials, model, and token usage.
func NewStatusOutput(cfg session.Config, usage session.TokenUsage, creds *auth.Credentials) *StatusOutputCell {
	lines := []tuirender.Line{tuirender.Styled("/status", magentaStyle)}

	lines = append(lines, sectionHeader("📂 ", "Workspace"))
	lines = append(lines, keyValueLine("Path", relativizeToHome(cfg.Cwd)))
	lines = append(lines, keyValueLine("Approval Mode", cfg.ApprovalMode))
	lines = append(lines, keyValueLine("Sandbox", cfg.SandboxMode))
	lines = append(lines, tuirender.Plain(""))

	if creds != nil {
		lines = append(lines, sectionHeader("👤 ", "Account"))
		lines = append(lines, tuirender.Plain("  • Signed in with ChatGPT"))
		if creds.Email != "" {
			lines = append(lines, keyValueLine("Login", creds.Email))
		}
		if creds.HasAPIKey() {
			lines = append(lines, tuirender.Plain("  • Using API key. Run coder login to use ChatGPT plan"))
		} else {
			plan := creds.PlanType
			if plan == "" {
				plan = "unknown"
			}
			lines = append(lines, keyValueLine("Plan", titleCase(plan)))
		}
		lines = append(lines, tuirender.Plain(""))
	}

	lines = append(lines, sectionHeader("🧠 ", "Model"))
	lines = append(lines, keyValueLine("Name", cfg.Model))
	lines = append(lines, keyValueLine("Provider", prettyProviderName(cfg.ModelProviderID)))
	if cfg.ReasoningEffort != "" {
		lines = append(lines, keyValueLine("Reasoning Effort", titleCase(cfg.ReasoningEffort)))
	}
	if cfg.ReasoningSummaries != "" {
		lines = append(lines, keyValueLine("Reasoning Summaries", titleCase(cfg.ReasoningSummaries)))
	}
	lines = append(lines, tuirender.Plain(""))

	lines = append(lines, sectionHeader("📊 ", "Token Usage"))
	inputSpans := []tuirender.Span{
		{Text: "  • Input: "},
		{Text: fmt.Sprintf("%d", usage.NonCachedInput())},
	}
	if usage.CachedInputTokens > 0 {
		inputSpans = append(inputSpans, tuirender.Span{Text: fmt.Sprintf(" (+ %d cached)", usage.CachedInputTokens)})
	}
	lines = append(lines, tuirender.Line{Spans: inputSpans})
	lines = append(lines, keyValueLine("Output", fmt.Sprintf("%d", usage.OutputTokens)))
	lines = append(lines, keyValueLine("Total", fmt.Sprintf("%d", usage.BlendedTotal())))

	lines = append(lines, tuirender.Plain(""))
	return &StatusOutputCell{newView(lines)}
}

func sectionHeader(icon, title string) tuirender.Line {
	return tuirender.Line{Spans: []tuirender.Span{
		{Text: icon},
		{Text: title, Style: boldStyle},
	}}
}

func keyValueLine(key, value string) tuirender.Line {
	return tuirender.Line{Spans: []tuirender.Span{
		{Text: fmt.Sprintf("  • %s: ", key)},
		{Text: value},
	}}
}

// relativizeToHome shows the workspace path relative to $HOME when it lives
// underneath it, e.g. ~/code/project.
func relativizeToHome(cwd string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return cwd
	}
	rel, err := filepath.Rel(home, cwd)
	if err != nil || strings.HasPrefix(rel, "..") {
		return cwd
	}
	if rel == "." {
		return "~"
	}
	return "~/" + filepath.ToSlash(rel)
}
