package mapping

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// CleanText strips any HTML the AI smuggled into a plain-text field. The
// unescape pass restores literal characters ("&", "<") the sanitizer
// entity-encodes, so clean plain text round-trips unchanged.
func CleanText(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
