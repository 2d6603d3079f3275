package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Strip removes all markup from free-text input before persistence.
// Content is stored as plain text; whatever rendering the widget does
// happens on its own side of the trust boundary.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	out := policy.Sanitize(s)
	out = unescapeEntities(out)
	return strings.TrimSpace(out)
}

// bluemonday escapes what it keeps; undo the common entities so the
// stored text reads the way the author typed it.
func unescapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", "\"")
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&#34;", "\"")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// Truncate clips s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
