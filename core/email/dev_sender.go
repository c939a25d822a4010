package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements EmailSender for local development.
// It saves each message body and a JSON metadata file to a directory
// instead of delivering it.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// emailMetadata contains the email data saved to JSON (excluding the body).
type emailMetadata struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	From        string `json:"from"`
	SendTo      string `json:"send_to"`
	Subject     string `json:"subject"`
	ContentType string `json:"content_type"`
	Tag         string `json:"tag,omitempty"`
	BodyFile    string `json:"body_file"`
}

// SendEmail writes the body (.html or .txt) and its metadata (.json) to the configured directory.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	id := uuid.New().String()

	// Prefer tag for filename, fallback to subject
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	// The short id keeps two messages sent within the same second apart.
	baseFilename := fmt.Sprintf("%s_%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier), id[:8])

	ext := ".html"
	contentType := ContentHTML
	if params.IsPlainText() {
		ext = ".txt"
		contentType = ContentPlain
	}

	bodyFile := baseFilename + ext
	if err := os.WriteFile(filepath.Join(d.dir, bodyFile), []byte(params.Body), 0644); err != nil {
		return fmt.Errorf("%w: failed to write body file: %v", ErrFailedToSendEmail, err)
	}

	metadata := emailMetadata{
		ID:          id,
		Timestamp:   now.Format(time.RFC3339),
		From:        params.From,
		SendTo:      params.SendTo,
		Subject:     params.Subject,
		ContentType: string(contentType),
		Tag:         params.Tag,
		BodyFile:    bodyFile,
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, baseFilename+".json"), jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe, lowercase filename of at most 100 characters.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
