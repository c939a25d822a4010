// Package sanitizer cleans user and configuration input.
//
// Functions can be used directly:
//
//	text := sanitizer.StripHTML("<b>Fish &amp; Chips</b>") // "Fish & Chips"
//
// or through struct tags, applied in order and separated by commas:
//
//	type Config struct {
//		FromEmail string `sanitize:"email"`
//		Subject   string `sanitize:"trim,header,max:200"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&cfg); err != nil {
//		return err
//	}
//
// Available tags: trim, header, email and max:N.
//
// StripHTML only removes markup and decodes entities. Its output is plain text
// and must be escaped again before it is embedded into HTML.
package sanitizer
