package session

// Config is the session configuration snapshot consumed by status rendering.
// It is produced by the surrounding engine; this package never reads files.
type Config struct {
	Model              string
	ModelProviderID    string
	Cwd                string
	ApprovalMode       string
	SandboxMode        string
	ReasoningEffort    string
	ReasoningSummaries string
}

// ConfiguredEvent announces the model the engine actually started with.
type ConfiguredEvent struct {
	Model string
}

// TokenUsage is a cumulative token count snapshot.
type TokenUsage struct {
	InputTokens       uint64
	CachedInputTokens uint64
	OutputTokens      uint64
}

// NonCachedInput returns input tokens excluding the cached portion.
func (u TokenUsage) NonCachedInput() uint64 {
	if u.CachedInputTokens > u.InputTokens {
		return 0
	}
	return u.InputTokens - u.CachedInputTokens
}

// BlendedTotal is the total billed across input and output.
func (u TokenUsage) BlendedTotal() uint64 {
	return u.InputTokens + u.OutputTokens
}
