package email

import (
	"errors"

	"github.com/dmitrymomot/feedback/core/sanitizer"
	"github.com/dmitrymomot/feedback/core/validator"
)

// Config holds the account a feedback message is sent from and where it goes.
// It is owned by a single dialog configuration and never shared globally.
type Config struct {
	FromEmail      string `env:"FEEDBACK_FROM_EMAIL" sanitize:"email" validate:"required;email"`
	Password       string `env:"FEEDBACK_PASSWORD" validate:"required"`
	Subject        string `env:"FEEDBACK_SUBJECT" envDefault:"Feedback" sanitize:"trim,header" validate:"required;max:998"`
	RecipientEmail string `env:"FEEDBACK_RECIPIENT_EMAIL" sanitize:"email" validate:"required;email"`
}

// Normalize returns a copy with addresses lowercased and the subject made header-safe.
// The password is left untouched.
func (c Config) Normalize() (Config, error) {
	if err := sanitizer.SanitizeStruct(&c); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return c, nil
}

// Validate reports every missing or malformed field.
// The returned error matches ErrInvalidConfig and wraps validator.ValidationErrors.
func (c Config) Validate() error {
	if err := validator.ValidateStruct(&c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Params builds the parameters for sending body with this configuration.
func (c Config) Params(body string, contentType ContentType) SendEmailParams {
	return SendEmailParams{
		From:        c.FromEmail,
		SendTo:      c.RecipientEmail,
		Subject:     c.Subject,
		Body:        body,
		ContentType: contentType,
		Tag:         "feedback",
	}
}
