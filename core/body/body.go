// Package body turns a submitted feedback form into an email body.
//
// Two formats are produced from the same ordered input: an HTML table with one
// row per entry and an indented plain-text listing. The primary feedback entry
// always comes first, followed by the custom fields in registration order.
//
// The primary feedback is written exactly as typed. Custom labels and values are
// normalized with sanitizer.StripHTML: known HTML elements are dropped and
// entities such as &amp; are decoded. The HTML format embeds all of it without
// escaping, so a custom value like "&lt;b&gt;" ends up as live markup in the
// message. SafeHTML escapes every cell instead and should be preferred when the
// recipient's mail client renders untrusted HTML.
package body

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/feedback/core/form"
	"github.com/dmitrymomot/feedback/core/sanitizer"
)

// PrimaryLabel is the label of the fixed feedback entry.
const PrimaryLabel = "Feedback"

const (
	tableOpen  = "<table style='width: 600px; border: 1px solid black;'>"
	tableClose = "</table>"
	rowFormat  = "<tr><td>%s</td><td>%s</td></tr>"
)

// HTML renders the entries as a two-column table.
func HTML(primaryLabel, primaryValue string, entries []form.Entry) string {
	return table(primaryLabel, primaryValue, entries, nil)
}

// SafeHTML renders the same table as HTML but escapes every cell.
func SafeHTML(primaryLabel, primaryValue string, entries []form.Entry) string {
	return table(primaryLabel, primaryValue, entries, escapeCell)
}

// PlainText renders "{label}:\n\t{value}\n" for each entry.
func PlainText(primaryLabel, primaryValue string, entries []form.Entry) string {
	var b strings.Builder
	writeText(&b, primaryLabel, primaryValue)
	for _, e := range entries {
		writeText(&b, sanitizer.StripHTML(e.Label), sanitizer.StripHTML(e.Value))
	}
	return b.String()
}

// Format renders the form contents in the requested mode using PrimaryLabel.
func Format(mode OutputMode, primaryValue string, entries []form.Entry) string {
	switch mode {
	case PlainTextMode:
		return PlainText(PrimaryLabel, primaryValue, entries)
	case SafeHTMLMode:
		return SafeHTML(PrimaryLabel, primaryValue, entries)
	default:
		return HTML(PrimaryLabel, primaryValue, entries)
	}
}

// FromForm reads the form once and renders it.
func FromForm(mode OutputMode, f form.Form) string {
	return Format(mode, f.PrimaryValue(), f.Entries())
}

// table writes one row per entry. escape, when set, is applied to every cell
// after custom entries have been normalized.
func table(primaryLabel, primaryValue string, entries []form.Entry, escape func(string) string) string {
	if escape == nil {
		escape = func(s string) string { return s }
	}

	var b strings.Builder
	b.WriteString(tableOpen)
	fmt.Fprintf(&b, rowFormat, escape(primaryLabel), escape(primaryValue))
	for _, e := range entries {
		label := sanitizer.StripHTML(e.Label)
		value := sanitizer.StripHTML(e.Value)
		fmt.Fprintf(&b, rowFormat, escape(label), escape(value))
	}
	b.WriteString(tableClose)
	return b.String()
}

func writeText(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(":\n\t")
	b.WriteString(value)
	b.WriteString("\n")
}
