// Package htmlsanitize strips markup from user-entered text before it is
// persisted. Brand and model descriptions are plain text; anything that
// looks like HTML in them is attacker input, not formatting.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Sanitize removes every HTML element and attribute from s and unescapes
// the entities bluemonday leaves behind, returning plain trimmed text.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
