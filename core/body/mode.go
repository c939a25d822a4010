package body

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/feedback/core/email"
)

// OutputMode selects the body format.
type OutputMode int

const (
	HTMLMode OutputMode = iota
	PlainTextMode
	SafeHTMLMode
)

// String returns the name accepted by ParseOutputMode.
func (m OutputMode) String() string {
	switch m {
	case PlainTextMode:
		return "text"
	case SafeHTMLMode:
		return "safe-html"
	default:
		return "html"
	}
}

// ContentType returns the MIME type the body must be sent with.
func (m OutputMode) ContentType() email.ContentType {
	if m == PlainTextMode {
		return email.ContentPlain
	}
	return email.ContentHTML
}

// ParseOutputMode parses "html", "text" (or "plain") and "safe-html".
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return HTMLMode, nil
	case "text", "plain", "plaintext", "plain-text":
		return PlainTextMode, nil
	case "safe-html", "safehtml":
		return SafeHTMLMode, nil
	default:
		return HTMLMode, fmt.Errorf("unknown output mode %q", s)
	}
}
