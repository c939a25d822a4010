package postmark

import "github.com/dmitrymomot/feedback/core/email"

// Config holds Postmark credentials plus the feedback account the messages are sent as.
// The account password in email.Config is not used by Postmark but still
// satisfies the dialog's configuration check.
type Config struct {
	email.Config

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	// BaseURL overrides the API endpoint; empty keeps the library default.
	BaseURL string `env:"POSTMARK_BASE_URL"`
}
