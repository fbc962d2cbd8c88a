package summarize

import "context"

// MockClient is a test double for Client. It records the last prompt and
// returns predefined data.
type MockClient struct {
	Reply      string
	Error      error
	LastPrompt string
}

// Complete returns the predefined reply or error.
func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	return m.Reply, m.Error
}

// Compile-time interface conformance check.
var _ Client = (*MockClient)(nil)
