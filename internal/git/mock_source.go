package git

import "context"

// MockLogSource is a test double for LogSource.
// It allows tests to provide predefined commit data without needing a real
// Git repository.
type MockLogSource struct {
	Records []CommitRecord
	Error   error
}

// NewMockLogSource creates a new MockLogSource with the given data.
func NewMockLogSource(records []CommitRecord, err error) *MockLogSource {
	return &MockLogSource{Records: records, Error: err}
}

// Collect returns the predefined records or error.
func (m *MockLogSource) Collect(_ context.Context) ([]CommitRecord, error) {
	return m.Records, m.Error
}

// Compile-time interface conformance check.
var _ LogSource = (*MockLogSource)(nil)
