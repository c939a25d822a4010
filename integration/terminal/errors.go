package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("terminal: aborted")
	// ErrNotRendered is returned by Run when the host never rendered a dialog.
	ErrNotRendered = errors.New("terminal: dialog was not rendered")
)
