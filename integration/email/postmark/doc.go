// Package postmark sends feedback through Postmark's transactional email API.
//
// Client implements email.EmailSender. Plain-text feedback is sent as TextBody
// and HTML feedback as HtmlBody with open and link tracking enabled.
//
//	sender, err := postmark.New(postmark.Config{
//		Config:               account, // email.Config of the feedback dialog
//		PostmarkServerToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),
//		PostmarkAccountToken: os.Getenv("POSTMARK_ACCOUNT_TOKEN"),
//	})
//	if err != nil {
//		// errors.Is(err, email.ErrInvalidConfig)
//	}
//
// Environment variables when loaded through core/config:
//
//   - POSTMARK_SERVER_TOKEN, POSTMARK_ACCOUNT_TOKEN: required by New
//   - POSTMARK_BASE_URL: optional API endpoint override
//   - FEEDBACK_*: the embedded email.Config
//
// API failures, including responses with a non-zero ErrorCode, are returned
// joined with email.ErrFailedToSendEmail.
package postmark
