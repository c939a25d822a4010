// Package mainloop provides a serial dispatcher that plays the role of a UI
// thread: work posted from any goroutine runs one item at a time on the
// goroutine that drives the loop.
//
//	loop := mainloop.New(16)
//	go func() {
//		err := sendInBackground()
//		loop.Post(func() { showResult(err) })
//	}()
//	_ = loop.Run(ctx) // returns after Close or ctx cancellation
package mainloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by RunOnce after Close has been called.
var ErrClosed = errors.New("mainloop: closed")

// Loop is a buffered queue of functions consumed by a single goroutine.
type Loop struct {
	ch        chan func()
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once
}

// New creates a loop whose queue holds up to bufferSize pending functions.
func New(bufferSize int) *Loop {
	if bufferSize < 1 {
		panic("mainloop: bufferSize must be at least 1")
	}
	return &Loop{
		ch:   make(chan func(), bufferSize),
		done: make(chan struct{}),
	}
}

// Post queues fn for execution on the loop goroutine.
// It blocks while the queue is full and returns false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	if fn == nil || l.closed.Load() {
		return false
	}
	select {
	case l.ch <- fn:
		return true
	case <-l.done:
		return false
	}
}

// RunOnce waits for a single posted function and runs it.
func (l *Loop) RunOnce(ctx context.Context) error {
	select {
	case fn := <-l.ch:
		fn()
		return nil
	case <-l.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes posted functions until the loop is closed or ctx is done.
// Functions still queued when Close is called are dropped.
func (l *Loop) Run(ctx context.Context) error {
	for {
		err := l.RunOnce(ctx)
		if errors.Is(err, ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Close stops the loop. It is idempotent.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
}

// Closed reports whether Close has been called.
func (l *Loop) Closed() bool {
	return l.closed.Load()
}
