package llm

import "context"

// MockProvider is a Provider for local development and tests. It echoes
// a canned reply, or delegates to Fn when set.
type MockProvider struct {
	Fn    func(ctx context.Context, prompt string) (string, error)
	Calls int
}

// NewMockProvider returns a mock that always succeeds.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.Fn != nil {
		return m.Fn(ctx, prompt)
	}
	return "¡Hola! Gracias por tu interés en Puerto López. ¿En qué más puedo ayudarte?", nil
}
