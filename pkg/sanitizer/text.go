package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func policy() *bluemonday.Policy {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// PlainText strips all HTML elements from s and decodes entities.
// Contents of script and style elements are dropped entirely.
func PlainText(s string) string {
	if s == "" {
		return s
	}
	return html.UnescapeString(policy().Sanitize(s))
}
