package retry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Terminal},
		{"status 429", errors.New("googleapi: Error 429: Too Many Requests"), Retryable},
		{"bare 429", errors.New("429"), Retryable},
		{"quota lower", errors.New("quota exceeded"), Retryable},
		{"quota mixed case", errors.New("You exceeded your current QuOtA"), Retryable},
		{"resource exhausted upper", errors.New("rpc error: code = RESOURCE_EXHAUSTED"), Retryable},
		{"resource exhausted lower", errors.New("resource_exhausted"), Retryable},
		{"wrapped", fmt.Errorf("generate: %w", errors.New("Status: RESOURCE_EXHAUSTED")), Retryable},
		{"both kinds of markers", errors.New("400 INVALID_ARGUMENT after quota check"), Retryable},
		{"bad request", errors.New("Error 400, Status: INVALID_ARGUMENT"), Terminal},
		{"server error", errors.New("Error 500, Status: INTERNAL"), Terminal},
		{"resource exhausted with space", errors.New("resource exhausted"), Terminal},
		{"empty text", errors.New(""), Terminal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Classify(tc.err))
			assert.Equal(t, tc.want == Retryable, IsRetryable(tc.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "terminal", Terminal.String())
}
