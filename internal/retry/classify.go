package retry

import "strings"

// Kind is the retry classification of a failed invocation.
type Kind int

const (
	// Terminal failures are returned to the caller without another attempt.
	Terminal Kind = iota
	// Retryable failures indicate a temporary rate-limit or quota condition.
	Retryable
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k == Retryable {
		return "retryable"
	}
	return "terminal"
}

// retryableMarkers are matched against the lower-cased error text.
var retryableMarkers = []string{
	"429",
	"quota",
	"resource_exhausted",
}

// Classify reports whether err should be retried. A nil error is Terminal.
func Classify(err error) Kind {
	if err == nil {
		return Terminal
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return Retryable
		}
	}
	return Terminal
}

// IsRetryable is shorthand for Classify(err) == Retryable.
func IsRetryable(err error) bool {
	return Classify(err) == Retryable
}
