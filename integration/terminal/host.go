package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrymomot/feedback"
	"github.com/dmitrymomot/feedback/core/form"
	"github.com/dmitrymomot/feedback/pkg/mainloop"
)

// Host renders a feedback dialog as a sequence of terminal prompts.
// The goroutine that calls Run acts as the UI thread.
type Host struct {
	prompter Prompter
	out      io.Writer
	loop     *mainloop.Loop

	mu       sync.Mutex
	data     feedback.RenderData
	rendered bool
	primary  string
	values   []string
	fieldErr string
}

// Option configures a Host.
type Option func(*Host)

// WithPrompter replaces the survey prompter.
func WithPrompter(p Prompter) Option {
	return func(h *Host) {
		if p != nil {
			h.prompter = p
		}
	}
}

// WithOutput sets where notifications are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(h *Host) {
		if w != nil {
			h.out = w
		}
	}
}

// New creates a terminal host. A Host serves a single dialog.
func New(opts ...Option) *Host {
	h := &Host{
		prompter: SurveyPrompter{},
		out:      os.Stdout,
		loop:     mainloop.New(4),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var _ feedback.Host = (*Host)(nil)

// Render remembers the dialog layout and binds value sources to the answers
// the user gives in Run.
func (h *Host) Render(data feedback.RenderData) (feedback.Bindings, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.data = data
	h.rendered = true
	h.values = make([]string, len(data.Fields))

	b := feedback.Bindings{
		Primary: func() string {
			h.mu.Lock()
			defer h.mu.Unlock()
			return h.primary
		},
		Fields: make([]form.ValueSource, len(data.Fields)),
	}
	for i := range data.Fields {
		b.Fields[i] = func() string {
			h.mu.Lock()
			defer h.mu.Unlock()
			return h.values[i]
		}
	}

	fmt.Fprintf(h.out, "== %s ==\n", data.Title)
	return b, nil
}

func (h *Host) Post(fn func()) {
	h.loop.Post(fn)
}

func (h *Host) ShowProgress(message string) {
	fmt.Fprintln(h.out, message)
}

func (h *Host) HideProgress() {}

func (h *Host) Notify(message string) {
	fmt.Fprintln(h.out, message)
}

func (h *Host) SetFieldError(message string) {
	h.mu.Lock()
	h.fieldErr = message
	h.mu.Unlock()
	fmt.Fprintf(h.out, "! %s\n", message)
}

// Close ends Run once the current callback returns.
func (h *Host) Close() {
	h.loop.Close()
}

// Run drives dlg until it closes: it prompts for every input, then offers the
// positive and negative actions. Input typed before a failed attempt is
// offered again as the default answer.
func (h *Host) Run(ctx context.Context, dlg *feedback.Dialog) error {
	h.mu.Lock()
	rendered, data := h.rendered, h.data
	h.mu.Unlock()
	if !rendered {
		return ErrNotRendered
	}

	for !dlg.Closed() {
		if err := h.edit(ctx, data); err != nil {
			dlg.Dismiss()
			return err
		}
		dlg.Edited()

		choice, err := h.prompter.Select(ctx, SelectConfig{
			Message: data.Title,
			Options: []string{data.PositiveLabel, data.NegativeLabel},
		})
		if err != nil {
			dlg.Dismiss()
			return err
		}
		if choice != 0 {
			dlg.Dismiss()
			return nil
		}

		switch err := dlg.Submit(); {
		case err == nil:
			// Wait for the send outcome posted back by the dialog.
			if err := h.loop.RunOnce(ctx); err != nil && !errors.Is(err, mainloop.ErrClosed) {
				dlg.Dismiss()
				return err
			}
		case errors.Is(err, feedback.ErrDialogClosed):
			return nil
		case errors.Is(err, feedback.ErrNoNetwork), errors.Is(err, feedback.ErrRequiredFieldMissing):
			// Already reported through Notify or SetFieldError.
		default:
			dlg.Dismiss()
			return err
		}
	}
	return nil
}

func (h *Host) edit(ctx context.Context, data feedback.RenderData) error {
	h.mu.Lock()
	primary, fieldErr := h.primary, h.fieldErr
	values := append([]string(nil), h.values...)
	h.mu.Unlock()

	help := data.PrimaryPlaceholder
	if fieldErr != "" {
		help = fieldErr
	}
	answer, err := h.prompter.TextArea(ctx, TextAreaConfig{
		Message: data.PrimaryPlaceholder,
		Default: primary,
		Help:    help,
	})
	if err != nil {
		return err
	}
	primary = answer

	for i, label := range data.Fields {
		v, err := h.prompter.Input(ctx, InputConfig{Message: label, Default: values[i]})
		if err != nil {
			return err
		}
		values[i] = v
	}

	h.mu.Lock()
	h.primary = primary
	h.values = values
	h.fieldErr = ""
	h.mu.Unlock()
	return nil
}
