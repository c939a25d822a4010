package email

import (
	"context"
	"errors"

	"github.com/dmitrymomot/feedback/core/validator"
)

// ContentType is the MIME type of an email body.
type ContentType string

const (
	ContentHTML  ContentType = "text/html"
	ContentPlain ContentType = "text/plain"
)

// EmailSender delivers a single message. Implementations must be safe for
// concurrent use and must honour context cancellation.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SenderFunc adapts a plain function to the EmailSender interface.
type SenderFunc func(ctx context.Context, params SendEmailParams) error

// SendEmail calls f(ctx, params).
func (f SenderFunc) SendEmail(ctx context.Context, params SendEmailParams) error {
	return f(ctx, params)
}

// SendEmailParams describes one outgoing message.
type SendEmailParams struct {
	From        string      `validate:"required;email"`
	SendTo      string      `validate:"required;email"`
	Subject     string      `validate:"required"`
	Body        string      `validate:"required"`
	ContentType ContentType // defaults to ContentHTML
	Tag         string      // optional, used for tracking and file names
}

// Validate checks that the message can be handed to a transport.
func (p SendEmailParams) Validate() error {
	if err := validator.ValidateStruct(&p); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	switch p.ContentType {
	case "", ContentHTML, ContentPlain:
	default:
		return errors.Join(ErrInvalidParams, errors.New("unsupported content type: "+string(p.ContentType)))
	}
	return nil
}

// IsPlainText reports whether the body should be sent as text/plain.
func (p SendEmailParams) IsPlainText() bool {
	return p.ContentType == ContentPlain
}
