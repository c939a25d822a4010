package body

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// escapeCell turns already normalized text into inert HTML. The strict policy
// runs over the escaped text so nothing but character data can reach the cell.
func escapeCell(s string) string {
	return cellSanitizer().Sanitize(html.EscapeString(s))
}

func cellSanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		cellPolicy = bluemonday.StrictPolicy()
	})
	return cellPolicy
}
