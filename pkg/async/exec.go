package async

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ExecFuture represents the result of an asynchronous computation that only returns an error.
type ExecFuture struct {
	err  error
	once sync.Once
	done chan struct{}
}

// Await waits for the asynchronous function to complete and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// Done returns a channel that is closed once the function has completed.
func (f *ExecFuture) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Then runs fn with the result on a separate goroutine once the function completes.
// It returns immediately; fn is called exactly once.
func (f *ExecFuture) Then(fn func(error)) {
	go func() {
		fn(f.Await())
	}()
}

// Exec executes a function asynchronously that only returns an error.
// A panic inside fn is recovered and reported as an error wrapping ErrPanic.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			f.complete(ctx.Err())
			return
		default:
		}

		f.complete(run(ctx, param, fn))
	}()

	return f
}

func (f *ExecFuture) complete(err error) {
	f.once.Do(func() {
		f.err = err
	})
}

func run[T any](ctx context.Context, param T, fn func(context.Context, T) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn(ctx, param)
}
