package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/sanitizer"
)

// Client implements email.EmailSender over SMTP.
// Safe for concurrent use: each send opens its own connection.
type Client struct {
	config Config
	auth   smtp.Auth
}

// New creates an SMTP-backed email sender. The configuration is checked here
// so a broken sender never reaches a dialog.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.username() == "" {
		return nil, fmt.Errorf("%w: Username is required", email.ErrInvalidConfig)
	}
	if cfg.password() == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}
	switch cfg.TLSMode {
	case ModeTLS, ModeSTARTTLS, ModePlain:
	default:
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", email.ErrInvalidConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.username(), cfg.password(), cfg.Host),
	}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail delivers params in one SMTP session. The context deadline, or the
// configured timeout, bounds the whole session.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if params.From == "" {
		params.From = c.config.FromEmail
	}
	if err := params.Validate(); err != nil {
		return err
	}

	message, err := c.buildMessage(params)
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	client, err := c.connect(ctx)
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	defer func() { _ = client.Close() }()

	if err := c.performSMTPTransaction(client, params.From, params.SendTo, message); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

// buildMessage creates the MIME message. The body is quoted-printable so long
// HTML lines stay within SMTP line limits.
func (c *Client) buildMessage(params email.SendEmailParams) ([]byte, error) {
	contentType := params.ContentType
	if contentType == "" {
		contentType = email.ContentHTML
	}

	headers := [][2]string{
		{"From", sanitizer.PreventHeaderInjection(params.From)},
		{"To", sanitizer.PreventHeaderInjection(params.SendTo)},
		{"Subject", mime.QEncoding.Encode("utf-8", sanitizer.PreventHeaderInjection(params.Subject))},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.Host)},
		{"MIME-Version", "1.0"},
		{"Content-Type", string(contentType) + "; charset=\"UTF-8\""},
		{"Content-Transfer-Encoding", "quoted-printable"},
	}
	if params.Tag != "" {
		headers = append(headers, [2]string{"X-Tag", sanitizer.PreventHeaderInjection(params.Tag)})
	}

	var message strings.Builder
	for _, h := range headers {
		message.WriteString(h[0])
		message.WriteString(": ")
		message.WriteString(h[1])
		message.WriteString("\r\n")
	}
	message.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&message)
	if _, err := qp.Write([]byte(params.Body)); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	return []byte(message.String()), nil
}

// connect dials the server and negotiates TLS according to the mode.
func (c *Client) connect(ctx context.Context) (*smtp.Client, error) {
	serverAddr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	dialer := &net.Dialer{Timeout: c.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	deadline := time.Now().Add(c.config.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	tlsConfig := &tls.Config{ServerName: c.config.Host}
	if c.config.TLSMode == ModeTLS {
		tlsConn := tls.Client(conn, tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
		}
		conn = tlsConn
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if c.config.TLSMode == ModeSTARTTLS {
		if err := client.StartTLS(tlsConfig); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to start TLS: %w", err)
		}
	}
	return client, nil
}

// performSMTPTransaction authenticates and transfers one message.
func (c *Client) performSMTPTransaction(client *smtp.Client, from, to string, message []byte) error {
	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is already accepted.
	_ = client.Quit()
	return nil
}
