package feedback

import (
	"context"

	"github.com/dmitrymomot/feedback/core/form"
)

// RenderData is everything a Host needs to draw the dialog.
type RenderData struct {
	Title              string
	PositiveLabel      string
	NegativeLabel      string
	PrimaryPlaceholder string
	Fields             []string // custom field labels, in display order
}

// Bindings are the live inputs a Host created while rendering.
// Fields must line up with RenderData.Fields.
type Bindings struct {
	Primary form.ValueSource
	Fields  []form.ValueSource
}

// Host is the rendering and UI-thread boundary of a dialog.
//
// Post schedules fn on the UI thread. Every other method is only called from
// the UI thread: directly from Show, Submit or Dismiss, or from a function
// passed to Post.
type Host interface {
	Render(data RenderData) (Bindings, error)
	Post(fn func())
	ShowProgress(message string)
	HideProgress()
	Notify(message string)
	SetFieldError(message string)
	Close()
}

// NetworkChecker reports whether the network can be reached.
type NetworkChecker interface {
	IsNetworkAvailable(ctx context.Context) bool
}

// NetworkFunc adapts a function to NetworkChecker.
type NetworkFunc func(ctx context.Context) bool

func (f NetworkFunc) IsNetworkAvailable(ctx context.Context) bool {
	return f(ctx)
}
