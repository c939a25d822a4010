package postmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/validator"
)

// Client sends feedback through Postmark's transactional API.
type Client struct {
	client *postmark.Client
	config Config
}

// New creates a Postmark-backed email sender.
// Both tokens are required; the from address must be a valid email.
func New(cfg Config) (*Client, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", email.ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", email.ErrInvalidConfig)
	}
	if !validator.IsEmail(cfg.FromEmail) {
		return nil, fmt.Errorf("%w: FromEmail must be a valid email address", email.ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: client,
		config: cfg,
	}, nil
}

// MustNewClient creates a Postmark client that panics on invalid config.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements email.EmailSender. Plain-text bodies go into TextBody,
// everything else into HTMLBody. Link tracking is limited to HTML.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if params.From == "" {
		params.From = c.config.FromEmail
	}
	if err := params.Validate(); err != nil {
		return err
	}

	msg := postmark.Email{
		From:    params.From,
		To:      params.SendTo,
		Subject: params.Subject,
		Tag:     params.Tag,
	}
	if params.IsPlainText() {
		msg.TextBody = params.Body
	} else {
		msg.HTMLBody = params.Body
		msg.TrackOpens = true
		msg.TrackLinks = "HtmlOnly"
	}

	resp, err := c.client.SendEmail(ctx, msg)
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
