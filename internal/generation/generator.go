package generation

import (
	"context"

	"github.com/phrazzld/examzen/internal/domain"
)

// Request is one call to the model: an instruction followed by zero or more
// page images, kept in order.
type Request struct {
	Prompt string
	Images []domain.Image
}

// Result is the model's answer.
type Result struct {
	Text         string
	Model        string
	FinishReason string
}

// Generator produces text from a Request.
type Generator interface {
	// Generate sends req to the model and returns its text. Errors wrap the
	// sentinels in errors.go, or are the remote failure itself when the call
	// could not be completed.
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Validate checks that the request has an instruction.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return ErrEmptyPrompt
	}
	return nil
}
