// Package htmlsanitize cleans the rich text stored in page bodies, blog
// posts, and legacy Content fields before it is rendered. It uses
// bluemonday to strip dangerous markup while keeping ordinary formatting.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()

		// Tables show up in imported fee schedules and older pages.
		policy.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy.AllowAttrs("class").OnElements("table", "th", "td", "tr")
		policy.AllowAttrs("style").OnElements("table", "th", "td")

		policy.AllowElements("u", "s", "sub", "sup", "mark")

		// The admin editor emits data-* attributes on some nodes.
		policy.AllowDataAttributes()
	})
	return policy
}

// Sanitize strips dangerous elements and attributes from HTML input.
// Bold, italic, lists, links, and tables survive.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeToHTML sanitizes the input and returns template.HTML, safe to
// render in templates without further escaping.
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}

// IsPlainText reports whether content looks like plain text rather than
// HTML. Pages migrated from the old site stored unmarked plain text.
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	// A tag needs both characters; missing either means plain text.
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}

// PlainTextToHTML escapes plain text, converts newlines to <br>, and
// wraps the result in a paragraph.
func PlainTextToHTML(text string) string {
	if text == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay takes stored content, which may be plain text or
// HTML, and returns sanitized template.HTML ready for rendering.
func PrepareForDisplay(content string) template.HTML {
	if content == "" {
		return ""
	}
	if IsPlainText(content) {
		return template.HTML(PlainTextToHTML(content))
	}
	return SanitizeToHTML(content)
}
