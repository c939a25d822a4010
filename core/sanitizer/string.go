package sanitizer

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims whitespace and converts to lowercase in one operation.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength handles Unicode properly and prevents buffer overflows from malicious input.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// StripHTML removes tags and decodes entities, leaving the plain text a user would see.
// Only known HTML elements, comments and doctypes are dropped. A '<' that does not
// open one, as in "x<5 and y>3", stays in the text.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			// io.EOF is the only error a strings.Reader produces
			return b.String()
		case xhtml.TextToken:
			b.WriteString(html.UnescapeString(string(z.Raw())))
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			raw := string(z.Raw())
			if z.Token().DataAtom == 0 {
				b.WriteString(html.UnescapeString(raw))
			}
		}
	}
}

// PreventHeaderInjection removes CR and LF so a value can be placed in a mail header.
func PreventHeaderInjection(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}
