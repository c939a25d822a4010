// Package email defines the sending capability used by the feedback dialog
// and the account configuration it is sent with.
//
// # EmailSender
//
// Transports implement a single method:
//
//	type EmailSender interface {
//		SendEmail(ctx context.Context, params SendEmailParams) error
//	}
//
// SMTP and Postmark implementations live in integration/email. For local
// development DevSender writes messages to disk:
//
//	sender := email.NewDevSender("./dev_emails")
//
//	// Files created:
//	// ./dev_emails/2024_01_15_143052_feedback_1a2b3c4d.html
//	// ./dev_emails/2024_01_15_143052_feedback_1a2b3c4d.json
//
// Tests and small hosts can use SenderFunc:
//
//	sender := email.SenderFunc(func(ctx context.Context, p email.SendEmailParams) error {
//		log.Println(p.Subject)
//		return nil
//	})
//
// # Config
//
// Config is the per-dialog account: from address, its password, subject and
// recipient. All four are required and both addresses must be valid:
//
//	cfg := email.Config{
//		FromEmail:      "app@gmail.com",
//		Password:       "app-password",
//		Subject:        "Feedback",
//		RecipientEmail: "team@example.com",
//	}
//	if err := cfg.Validate(); err != nil {
//		// errors.Is(err, email.ErrInvalidConfig) == true
//	}
//
// Config carries env tags so it can be loaded with the config package.
//
// # Errors
//
//   - ErrInvalidParams: SendEmailParams failed validation
//   - ErrInvalidConfig: transport or account configuration is incomplete
//   - ErrFailedToSendEmail: delivery failed (network, auth, provider)
package email
