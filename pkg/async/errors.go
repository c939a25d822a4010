package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the duration elapses first.
	ErrTimeout = errors.New("async: operation timed out")
	// ErrPanic wraps a value recovered from a panicking function.
	ErrPanic = errors.New("async: function panicked")
)
