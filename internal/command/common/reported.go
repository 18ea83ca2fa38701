package common

import "github.com/pkg/errors"

// reportedError is a failure that was already logged and shown to the user.
type reportedError struct {
	error
}

func (e *reportedError) Unwrap() error {
	return e.error
}

// Reported marks err as already logged so the exit handler only sets the
// exit status.
func Reported(err error) error {
	if err == nil {
		return nil
	}

	return &reportedError{err}
}

func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}
