package cli

import (
	"fmt"
)

// localError is a failure on the user's side of the command line, such as an
// unreadable page file or missing configuration. Its message is shown as is.
type localError struct {
	msg string
	err error
}

func (e *localError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *localError) Unwrap() error {
	return e.err
}

func newLocalError(err error, format string, args ...any) error {
	return &localError{msg: fmt.Sprintf(format, args...), err: err}
}
