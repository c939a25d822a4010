package email_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/validator"
)

func validConfig() email.Config {
	return email.Config{
		FromEmail:      "app@gmail.com",
		Password:       "secret",
		Subject:        "Feedback",
		RecipientEmail: "team@example.com",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*email.Config)
		wantField string
	}{
		{name: "valid", mutate: func(*email.Config) {}},
		{name: "missing from", mutate: func(c *email.Config) { c.FromEmail = "" }, wantField: "FromEmail"},
		{name: "invalid from", mutate: func(c *email.Config) { c.FromEmail = "app" }, wantField: "FromEmail"},
		{name: "missing password", mutate: func(c *email.Config) { c.Password = "" }, wantField: "Password"},
		{name: "missing subject", mutate: func(c *email.Config) { c.Subject = "  " }, wantField: "Subject"},
		{name: "missing recipient", mutate: func(c *email.Config) { c.RecipientEmail = "" }, wantField: "RecipientEmail"},
		{name: "invalid recipient", mutate: func(c *email.Config) { c.RecipientEmail = "team@" }, wantField: "RecipientEmail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.True(t, verrs.Has(tt.wantField), "expected %s in %v", tt.wantField, verrs)
		})
	}
}

func TestConfig_Normalize(t *testing.T) {
	t.Parallel()

	cfg, err := email.Config{
		FromEmail:      "  App@Gmail.com ",
		Password:       " keep spaces ",
		Subject:        " Feedback\r\nBcc: evil@example.com",
		RecipientEmail: "TEAM@example.com",
	}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "app@gmail.com", cfg.FromEmail)
	assert.Equal(t, " keep spaces ", cfg.Password)
	assert.Equal(t, "Feedback Bcc: evil@example.com", cfg.Subject)
	assert.Equal(t, "team@example.com", cfg.RecipientEmail)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Params(t *testing.T) {
	t.Parallel()

	p := validConfig().Params("body", email.ContentPlain)
	assert.Equal(t, "app@gmail.com", p.From)
	assert.Equal(t, "team@example.com", p.SendTo)
	assert.Equal(t, "Feedback", p.Subject)
	assert.Equal(t, "body", p.Body)
	assert.True(t, p.IsPlainText())
	require.NoError(t, p.Validate())
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	p := validConfig().Params("", email.ContentHTML)
	assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)

	p = validConfig().Params("body", email.ContentType("application/json"))
	assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got email.SendEmailParams
	var sender email.EmailSender = email.SenderFunc(func(_ context.Context, p email.SendEmailParams) error {
		got = p
		return nil
	})

	want := validConfig().Params("hi", email.ContentHTML)
	require.NoError(t, sender.SendEmail(context.Background(), want))
	assert.Equal(t, want, got)
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	t.Run("writes html body and metadata", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "out")
		sender := email.NewDevSender(dir)

		err := sender.SendEmail(context.Background(), validConfig().Params("<table></table>", email.ContentHTML))
		require.NoError(t, err)

		htmlFiles, _ := filepath.Glob(filepath.Join(dir, "*.html"))
		jsonFiles, _ := filepath.Glob(filepath.Join(dir, "*.json"))
		require.Len(t, htmlFiles, 1)
		require.Len(t, jsonFiles, 1)
		assert.Contains(t, filepath.Base(htmlFiles[0]), "_feedback_")

		body, err := os.ReadFile(htmlFiles[0])
		require.NoError(t, err)
		assert.Equal(t, "<table></table>", string(body))

		raw, err := os.ReadFile(jsonFiles[0])
		require.NoError(t, err)
		var meta map[string]any
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "app@gmail.com", meta["from"])
		assert.Equal(t, "team@example.com", meta["send_to"])
		assert.Equal(t, "text/html", meta["content_type"])
		assert.Equal(t, filepath.Base(htmlFiles[0]), meta["body_file"])
	})

	t.Run("writes plain text body", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		require.NoError(t, sender.SendEmail(context.Background(), validConfig().Params("Feedback:\n\tok\n", email.ContentPlain)))

		txtFiles, _ := filepath.Glob(filepath.Join(dir, "*.txt"))
		require.Len(t, txtFiles, 1)
		body, err := os.ReadFile(txtFiles[0])
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "Feedback:"))
	})

	t.Run("rejects invalid params", func(t *testing.T) {
		t.Parallel()
		sender := email.NewDevSender(t.TempDir())
		err := sender.SendEmail(context.Background(), email.SendEmailParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := email.NewDevSender(t.TempDir()).SendEmail(ctx, validConfig().Params("x", email.ContentHTML))
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}
