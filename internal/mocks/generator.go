package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/examzen/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateFn overrides the default behavior when set.
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Result, error)

	// Default response values
	Text  string
	Model string
	Err   error

	mu       sync.Mutex
	requests []generation.Request
}

// Generate implements generation.Generator.
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	model := m.Model
	if model == "" {
		model = "mock-model"
	}
	return &generation.Result{Text: m.Text, Model: model, FinishReason: "STOP"}, nil
}

// Calls returns the number of Generate calls.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request, or the zero Request.
func (m *MockGenerator) LastRequest() generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return generation.Request{}
	}
	return m.requests[len(m.requests)-1]
}

// NewMockGeneratorWithText returns a MockGenerator answering text.
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError returns a MockGenerator failing with err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorWithContentBlocked simulates a safety block.
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{Err: generation.ErrContentBlocked}
}
