// Package terminal implements feedback.Host with interactive terminal prompts
// built on github.com/AlecAivazis/survey/v2.
//
//	host := terminal.New()
//	dlg, err := cfg.Show(ctx, host, sender)
//	if err != nil {
//		return err
//	}
//	return host.Run(ctx, dlg)
//
// Run is the UI thread: it asks for the feedback text and every custom field,
// then lets the user pick the send or cancel action. The send outcome is
// delivered back to Run through a mainloop.Loop before the next prompt.
package terminal
