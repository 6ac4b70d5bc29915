// Package sanitize strips markup from client-supplied free text before it
// reaches the domain.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace. The
// result is plain text safe to store and echo back.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// TextPtr applies Text through an optional field.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	return &clean
}
