// Package testutil provides shared mocks and helpers for tests.
package testutil

import (
	"context"
	"fmt"
)

// MockProvider is a scripted translation provider. Replies and Errors
// are consumed by call index, and Calls records every submitted prompt.
// When ReplyFunc is set it takes precedence over the scripted values.
type MockProvider struct {
	Replies   []string
	Errors    map[int]error
	ReplyFunc func(call int, prompt string) (string, error)
	Calls     []string
}

// Translate returns the scripted reply for the current call.
func (m *MockProvider) Translate(ctx context.Context, prompt string) (string, error) {
	call := len(m.Calls)
	m.Calls = append(m.Calls, prompt)

	if m.ReplyFunc != nil {
		return m.ReplyFunc(call, prompt)
	}
	if err, ok := m.Errors[call]; ok {
		return "", err
	}
	if call < len(m.Replies) {
		return m.Replies[call], nil
	}
	return "", fmt.Errorf("no scripted reply for call %d", call)
}

// Name returns the mock provider name
func (m *MockProvider) Name() string {
	return "mock"
}
