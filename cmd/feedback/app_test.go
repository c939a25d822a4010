package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedback/integration/terminal"
)

// answers is a scripted prompter.
type answers struct {
	inputs    []string
	passwords []string
	texts     []string
	choices   []int
}

func pop[T any](list *[]T) (T, error) {
	var zero T
	if len(*list) == 0 {
		return zero, errors.New("no scripted answer left")
	}
	v := (*list)[0]
	*list = (*list)[1:]
	return v, nil
}

func (a *answers) Input(_ context.Context, cfg terminal.InputConfig) (string, error) {
	v, err := pop(&a.inputs)
	if err != nil {
		return "", err
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (a *answers) Password(context.Context, terminal.InputConfig) (string, error) {
	return pop(&a.passwords)
}

func (a *answers) TextArea(context.Context, terminal.TextAreaConfig) (string, error) {
	return pop(&a.texts)
}

func (a *answers) Select(context.Context, terminal.SelectConfig) (int, error) {
	return pop(&a.choices)
}

func runApp(t *testing.T, prompter terminal.Prompter, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(prompter)
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"feedback"}, args...))
	return out.String(), err
}

func readMessages(t *testing.T, dir, ext string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	require.NoError(t, err)
	var bodies []string
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		bodies = append(bodies, string(data))
	}
	return bodies
}

func TestApp_DevSenderPlainText(t *testing.T) {
	dir := t.TempDir()
	prompts := &answers{
		texts:   []string{"Love it"},
		inputs:  []string{"Alice", "alice@example.com"},
		choices: []int{0},
	}

	out, err := runApp(t, prompts,
		"--account", "app@example.com",
		"--password", "secret",
		"--app-name", "Notes",
		"--plain-text",
		"--with-name", "--with-email",
		"--dev-dir", dir,
	)
	require.NoError(t, err)

	assert.Contains(t, out, "== Send Feedback for Notes ==")
	assert.Contains(t, out, "Thank you for your feedback!")

	bodies := readMessages(t, dir, ".txt")
	require.Len(t, bodies, 1)
	assert.Equal(t, "Feedback:\n\tLove it\nName:\n\tAlice\nEmail:\n\talice@example.com\n", bodies[0])

	meta := readMessages(t, dir, ".json")
	require.Len(t, meta, 1)
	// The recipient defaults to the sending account.
	assert.Contains(t, meta[0], `"send_to": "app@example.com"`)
}

func TestApp_PromptsForMissingCredentials(t *testing.T) {
	dir := t.TempDir()
	prompts := &answers{
		inputs:    []string{"me@example.com", "1.2.3"},
		passwords: []string{"pw"},
		texts:     []string{"Bug in sync"},
		choices:   []int{0},
	}

	out, err := runApp(t, prompts, "--title", "Report a bug", "--field", "Build", "--dev-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "== Report a bug ==")

	bodies := readMessages(t, dir, ".html")
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "<tr><td>Feedback</td><td>Bug in sync</td></tr><tr><td>Build</td><td>1.2.3</td></tr>")

	meta := readMessages(t, dir, ".json")
	require.Len(t, meta, 1)
	assert.Contains(t, meta[0], `"from": "me@example.com"`)
	assert.Contains(t, meta[0], `"send_to": "me@example.com"`)
}

func TestApp_InvalidAccount(t *testing.T) {
	_, err := runApp(t, &answers{}, "--account", "not-an-email", "--password", "x", "--dev-dir", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidAccount)
}

func TestApp_HTMLOutputAndCancel(t *testing.T) {
	dir := t.TempDir()

	_, err := runApp(t, &answers{texts: []string{"x"}, choices: []int{1}},
		"-a", "app@example.com", "-p", "secret", "--dev-dir", dir)
	require.NoError(t, err)
	assert.Empty(t, readMessages(t, dir, ".html"))

	_, err = runApp(t, &answers{texts: []string{"<b>bold</b> &amp; more"}, choices: []int{0}},
		"-a", "app@example.com", "-p", "secret", "--output", "html", "--dev-dir", dir)
	require.NoError(t, err)
	bodies := readMessages(t, dir, ".html")
	require.Len(t, bodies, 1)
	assert.True(t, strings.HasPrefix(bodies[0], "<table"))
	assert.Contains(t, bodies[0], "<tr><td>Feedback</td><td><b>bold</b> &amp; more</td></tr>")
}

func TestApp_UnknownOutputAndTransport(t *testing.T) {
	_, err := runApp(t, &answers{}, "-a", "app@example.com", "-p", "x", "--output", "pdf", "--dev-dir", t.TempDir())
	assert.ErrorContains(t, err, "unknown output mode")

	_, err = runApp(t, &answers{}, "-a", "app@example.com", "-p", "x", "--transport", "pigeon")
	assert.ErrorContains(t, err, "unknown transport")
}
