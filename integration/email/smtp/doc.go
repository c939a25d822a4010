// Package smtp provides an SMTP implementation of email.EmailSender.
//
// The sender authenticates as the feedback account (email.Config) and sends the
// body as text/plain or text/html depending on SendEmailParams.ContentType.
// Implicit TLS, STARTTLS and plain connections are supported.
//
//	account := email.Config{
//		FromEmail:      "app@gmail.com",
//		Password:       "app-password",
//		Subject:        "Feedback",
//		RecipientEmail: "support@example.com",
//	}
//
//	sender, err := smtp.New(smtp.Gmail(account))
//	if err != nil {
//		// invalid configuration
//	}
//
//	err = sender.SendEmail(ctx, account.Params(body, email.ContentPlain))
//
// # Configuration
//
// Config embeds email.Config and adds the server settings. Loaded with
// core/config, the defaults target Gmail:
//
//   - SMTP_HOST: smtp.gmail.com
//   - SMTP_PORT: 465
//   - SMTP_TLS_MODE: tls ("tls", "starttls" or "plain")
//   - SMTP_USERNAME / SMTP_PASSWORD: default to the account address and password
//   - SMTP_TIMEOUT: 30s, bounds one session unless the context deadline is sooner
//
// Plain mode sends credentials in clear text and is only accepted by net/smtp
// against localhost.
//
// Headers built from parameters have CR and LF removed. The body is
// quoted-printable encoded.
package smtp
