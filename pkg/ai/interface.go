package ai

import "context"

// Generator is the opaque text-generation call used by the meeting analysis
// pass. Implementations (Gemini, Ollama, OpenAI, ...) live outside this
// repository; the sync pipeline only consumes the interface.
type Generator interface {
	// GenerateSummary produces a short summary of a meeting transcript
	GenerateSummary(ctx context.Context, transcript string) (string, error)

	// ProposeActionItems extracts candidate action items from a transcript.
	// Proposals are deduplicated against provider-native items before they
	// are persisted.
	ProposeActionItems(ctx context.Context, transcript string) ([]string, error)
}
