// Package remote classifies failures of calls to third-party APIs.
package remote

import (
	"errors"
	"fmt"
)

// Error reports a failed call to a remote service. Err is the client
// library's error and stays reachable through errors.As.
type Error struct {
	Service string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns nil when err is nil.
func Wrap(service, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Service: service, Op: op, Err: err}
}

// Is reports whether err is, or wraps, a remote failure.
func Is(err error) bool {
	var re *Error
	return errors.As(err, &re)
}
