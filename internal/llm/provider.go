package llm

import "context"

// Provider defines the interface for generative-text backends.
type Provider interface {
	// Generate sends one prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationParams are the fixed generation parameters sent with every
// request. They are deliberately not configurable per call.
type GenerationParams struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// DefaultParams returns the generation parameters used by the support
// pipeline.
func DefaultParams() GenerationParams {
	return GenerationParams{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}
