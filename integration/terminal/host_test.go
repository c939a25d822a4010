package terminal_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedback"
	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/integration/terminal"
)

// script answers prompts in order and records what was asked.
type script struct {
	mu       sync.Mutex
	texts    []string
	inputs   []string
	choices  []int
	defaults []string
	helps    []string
	err      error
}

func (s *script) Input(_ context.Context, cfg terminal.InputConfig) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = append(s.defaults, cfg.Default)
	if len(s.inputs) == 0 {
		return "", errors.New("script: no input left")
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *script) Password(ctx context.Context, cfg terminal.InputConfig) (string, error) {
	return s.Input(ctx, cfg)
}

func (s *script) TextArea(_ context.Context, cfg terminal.TextAreaConfig) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.helps = append(s.helps, cfg.Help)
	if s.err != nil {
		return "", s.err
	}
	if len(s.texts) == 0 {
		return "", errors.New("script: no text left")
	}
	v := s.texts[0]
	s.texts = s.texts[1:]
	return v, nil
}

func (s *script) Select(_ context.Context, cfg terminal.SelectConfig) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.choices) == 0 {
		return 0, errors.New("script: no choice left")
	}
	v := s.choices[0]
	s.choices = s.choices[1:]
	return v, nil
}

func account() email.Config {
	return email.Config{
		FromEmail:      "app@example.com",
		Password:       "secret",
		Subject:        "Feedback",
		RecipientEmail: "support@example.com",
	}
}

func online() feedback.Option {
	return feedback.WithNetworkChecker(feedback.NetworkFunc(func(context.Context) bool { return true }))
}

func TestHost_RequiredThenSend(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	prompts := &script{
		texts:   []string{"", "Great app"},
		inputs:  []string{"Alice", "Alice"},
		choices: []int{0, 0},
	}
	host := terminal.New(terminal.WithPrompter(prompts), terminal.WithOutput(&out))

	var sent []email.SendEmailParams
	sender := email.SenderFunc(func(_ context.Context, p email.SendEmailParams) error {
		sent = append(sent, p)
		return nil
	})

	cfg := feedback.New(account()).SetAppName("Notes").AddField("Name").SetTextEmail(true)
	dlg, err := cfg.Show(context.Background(), host, sender, online())
	require.NoError(t, err)

	require.NoError(t, host.Run(context.Background(), dlg))

	assert.True(t, dlg.Closed())
	assert.Equal(t, feedback.Succeeded, dlg.Status().State)
	require.Len(t, sent, 1)
	assert.Equal(t, "Feedback:\n\tGreat app\nName:\n\tAlice\n", sent[0].Body)

	// The second round offers the first answer back as the default.
	assert.Equal(t, []string{"", "Alice"}, prompts.defaults)
	assert.Equal(t, "This field is required.", prompts.helps[1])

	text := out.String()
	assert.Contains(t, text, "== Send Feedback for Notes ==")
	assert.Contains(t, text, "! This field is required.")
	assert.Contains(t, text, "Sending feedback...")
	assert.Contains(t, text, "Thank you for your feedback!")
}

func TestHost_FailureThenCancel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	prompts := &script{
		texts:   []string{"Crashes on start", "Crashes on start"},
		choices: []int{0, 1},
	}
	host := terminal.New(terminal.WithPrompter(prompts), terminal.WithOutput(&out))

	calls := 0
	sender := email.SenderFunc(func(context.Context, email.SendEmailParams) error {
		calls++
		return errors.New("connection reset")
	})

	dlg, err := feedback.New(account()).Show(context.Background(), host, sender, online())
	require.NoError(t, err)
	require.NoError(t, host.Run(context.Background(), dlg))

	assert.Equal(t, 1, calls)
	assert.True(t, dlg.Closed())
	assert.Contains(t, out.String(), "An unknown error occurred.")
	assert.NotContains(t, out.String(), "connection reset")
}

func TestHost_AbortDismisses(t *testing.T) {
	t.Parallel()

	prompts := &script{err: terminal.ErrAborted}
	host := terminal.New(terminal.WithPrompter(prompts), terminal.WithOutput(&bytes.Buffer{}))

	sender := email.SenderFunc(func(context.Context, email.SendEmailParams) error { return nil })
	dlg, err := feedback.New(account()).Show(context.Background(), host, sender, online())
	require.NoError(t, err)

	err = host.Run(context.Background(), dlg)
	assert.ErrorIs(t, err, terminal.ErrAborted)
	assert.True(t, dlg.Closed())
}

func TestHost_RunBeforeRender(t *testing.T) {
	t.Parallel()

	host := terminal.New(terminal.WithPrompter(&script{}))
	assert.ErrorIs(t, host.Run(context.Background(), nil), terminal.ErrNotRendered)
}
