// SPDX-License-Identifier: MPL-2.0

package quill

import "fmt"

// ExitError signals a non-zero exit code without forcing os.Exit in
// handlers. Run exits the process with Code; RunContext returns the error
// unchanged.
type ExitError struct {
	Code int
	Err  error
}

// Exit returns an ExitError carrying code, for handlers that want a
// specific exit status without an error message.
func Exit(code int) error {
	return &ExitError{Code: code}
}

// Exitf returns an ExitError carrying code and a formatted message.
func Exitf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
