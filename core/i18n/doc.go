// Package i18n localizes the user-facing strings of the feedback dialog.
//
// Messages live in TOML files parsed by go-i18n. English and Spanish are
// embedded; more languages can be added at construction time:
//
//	bundle, err := i18n.New(
//		i18n.WithMessageFile("locales/active.de.toml"),
//	)
//	if err != nil {
//		return err
//	}
//
//	tr := i18n.NewTranslator(bundle, "de", "en")
//	title := tr.T(i18n.MsgTitleWithApp, i18n.M{"AppName": "Notes"})
//
// A missing message id is returned as-is, so a typo shows up on screen
// instead of an empty label.
package i18n
