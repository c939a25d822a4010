package feedback_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedback"
	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/form"
	"github.com/dmitrymomot/feedback/pkg/mainloop"
)

// recordingHost renders into memory and queues posted callbacks on a mainloop
// that the test drives by hand.
type recordingHost struct {
	loop *mainloop.Loop

	mu        sync.Mutex
	calls     []string
	rendered  []feedback.RenderData
	primary   string
	values    []string
	renderErr error
	sources   int // -1 binds one source per rendered field
}

func newHost(t *testing.T, primary string, values ...string) *recordingHost {
	t.Helper()
	loop := mainloop.New(8)
	t.Cleanup(loop.Close)
	return &recordingHost{loop: loop, primary: primary, values: values, sources: -1}
}

func (h *recordingHost) Render(data feedback.RenderData) (feedback.Bindings, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record("render")
	h.rendered = append(h.rendered, data)
	if h.renderErr != nil {
		return feedback.Bindings{}, h.renderErr
	}

	n := h.sources
	if n < 0 {
		n = len(data.Fields)
	}
	b := feedback.Bindings{
		Primary: func() string {
			h.mu.Lock()
			defer h.mu.Unlock()
			return h.primary
		},
		Fields: make([]form.ValueSource, n),
	}
	for i := range n {
		b.Fields[i] = func() string {
			h.mu.Lock()
			defer h.mu.Unlock()
			if i < len(h.values) {
				return h.values[i]
			}
			return ""
		}
	}
	return b, nil
}

func (h *recordingHost) Post(fn func())           { h.loop.Post(fn) }
func (h *recordingHost) ShowProgress(msg string)  { h.add("progress:" + msg) }
func (h *recordingHost) HideProgress()            { h.add("hide_progress") }
func (h *recordingHost) Notify(msg string)        { h.add("notify:" + msg) }
func (h *recordingHost) SetFieldError(msg string) { h.add("field_error:" + msg) }
func (h *recordingHost) Close()                   { h.add("close") }

func (h *recordingHost) setPrimary(v string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.primary = v
}

func (h *recordingHost) add(call string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(call)
}

func (h *recordingHost) record(call string) {
	h.calls = append(h.calls, call)
}

func (h *recordingHost) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

// settle runs the next callback posted by the dialog.
func (h *recordingHost) settle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.loop.RunOnce(ctx))
}

// recordingSender counts sends and optionally blocks until released.
type recordingSender struct {
	mu      sync.Mutex
	params  []email.SendEmailParams
	err     error
	panicOn bool
	release chan struct{}
	started chan struct{}
}

func (s *recordingSender) SendEmail(ctx context.Context, p email.SendEmailParams) error {
	s.mu.Lock()
	s.params = append(s.params, p)
	started, release, err, panicOn := s.started, s.release, s.err, s.panicOn
	s.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if panicOn {
		panic("smtp exploded")
	}
	return err
}

func (s *recordingSender) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.params)
}

func (s *recordingSender) Last() email.SendEmailParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params[len(s.params)-1]
}

func (s *recordingSender) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func online() feedback.Option {
	return feedback.WithNetworkChecker(feedback.NetworkFunc(func(context.Context) bool { return true }))
}

func offline() feedback.Option {
	return feedback.WithNetworkChecker(feedback.NetworkFunc(func(context.Context) bool { return false }))
}

func validEmail() email.Config {
	return email.Config{
		FromEmail:      "app@example.com",
		Password:       "secret",
		Subject:        "Feedback",
		RecipientEmail: "support@example.com",
	}
}
