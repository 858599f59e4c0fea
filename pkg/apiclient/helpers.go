package apiclient

import (
	"net/url"
	"strings"
)

// resourcePath joins path segments into an absolute URL path, escaping each
// segment.
//
// Example:
//
//	path := resourcePath("users", "7", "password") // "/users/7/password"
func resourcePath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
