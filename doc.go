// Package feedback is an embeddable feedback dialog that emails what the user typed.
//
// A dialog collects a required free-text "feedback" value plus any number of
// caller-defined labeled fields, formats them into an HTML table or a plain-text
// body and hands the message to an email.EmailSender on a background worker.
//
// # Configuration
//
// Config is a fluent builder. Every setter returns the same *Config:
//
//	cfg := feedback.New(email.Config{
//		FromEmail:      "app@example.com",
//		Password:       secret,
//		Subject:        "Feedback",
//		RecipientEmail: "support@example.com",
//	}).
//		SetAppName("Notes").
//		AddField("Name").
//		AddField("Email").
//		SetTextEmail(true)
//
// The effective title is the explicit SetDialogTitle value, otherwise
// "Send Feedback for {app}" when an app name is set, otherwise "Send Feedback".
//
// # Showing a dialog
//
// Show validates the email configuration before anything is rendered, freezes a
// copy of the configuration and asks the Host to render the inputs:
//
//	dlg, err := cfg.Show(ctx, host, sender,
//		feedback.WithNetworkChecker(netcheck.New()),
//		feedback.WithLogger(log),
//	)
//	if errors.Is(err, feedback.ErrInvalidEmailConfig) {
//		// fix the configuration
//	}
//
// The Host is the rendering boundary. It draws the dialog, returns value sources
// for the inputs and runs callbacks on its UI thread through Post.
//
// # Submitting
//
// Submit runs on the UI thread and walks the state machine:
//
//	Idle -> Validating -> Sending -> Succeeded (dialog closes)
//	                   \          \-> Failed("unknown error")
//	                    \-> Failed("no network" | "required field")
//
// A failed attempt keeps every value the user typed; Edited moves the dialog back
// to Idle and Submit may be called again. Only one send is in flight per dialog.
// A completion that arrives after Dismiss is dropped.
package feedback
