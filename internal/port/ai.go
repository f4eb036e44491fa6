package port

import "context"

// AIProvider abstracts the generative-text backend. Implementations can
// target Ollama, Ollama Cloud, or any compatible chat API.
type AIProvider interface {
	// ModelName returns the identifier of the model being used.
	ModelName() string

	// Chat sends a system and user prompt and returns the complete response.
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
