// Package httperror defines an error type that carries an HTTP status code
// and a client-safe message alongside the underlying error.
package httperror

import "errors"

// Error wraps an internal error with the status code and external message
// that should be returned to the caller. The wrapped error is never exposed
// in responses, only logged.
type Error struct {
	// Code is the HTTP status code to return.
	Code int
	// ExternalMsg is the message safe to show to the caller.
	ExternalMsg string
	// Err is the underlying error.
	Err error
}

func (e Error) Error() string {
	if e.Err == nil {
		return e.ExternalMsg
	}
	if e.ExternalMsg == "" {
		return e.Err.Error()
	}
	return e.ExternalMsg + ": " + e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

// AsHTTPError returns the Error in err's chain, if any.
func AsHTTPError(err error) (Error, bool) {
	var httpErr Error
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}
