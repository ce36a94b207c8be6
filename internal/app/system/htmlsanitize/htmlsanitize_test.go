package htmlsanitize

import (
	"html/template"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "empty string",
			input:    "",
			contains: []string{},
			excludes: []string{},
		},
		{
			name:     "plain text",
			input:    "Our firm advises on corporate matters.",
			contains: []string{"Our firm advises on corporate matters."},
			excludes: []string{},
		},
		{
			name:     "safe HTML preserved",
			input:    "<p>We appear before the <strong>NCLT</strong> and NCLAT.</p>",
			contains: []string{"<p>", "<strong>", "NCLT"},
			excludes: []string{},
		},
		{
			name:     "script tag removed",
			input:    "<p>About us</p><script>alert('xss')</script>",
			contains: []string{"<p>About us</p>"},
			excludes: []string{"<script>", "alert", "xss"},
		},
		{
			name:     "onclick removed",
			input:    `<p onclick="alert('xss')">Book an appointment</p>`,
			contains: []string{"<p>", "Book an appointment"},
			excludes: []string{"onclick", "alert"},
		},
		{
			name:     "javascript URL removed",
			input:    `<a href="javascript:alert('xss')">Contact</a>`,
			contains: []string{"Contact"},
			excludes: []string{"javascript:", "alert"},
		},
		{
			name:     "safe link preserved",
			input:    `<a href="https://example.com/practice-areas">Practice Areas</a>`,
			contains: []string{"<a", "href", "https://example.com/practice-areas"},
			excludes: []string{},
		},
		{
			name:     "fee table preserved",
			input:    "<table><tr><td>Consultation</td></tr></table>",
			contains: []string{"<table>", "<tr>", "<td>", "Consultation"},
			excludes: []string{},
		},
		{
			name:     "iframe removed",
			input:    `<iframe src="https://evil.com"></iframe><p>Content</p>`,
			contains: []string{"<p>Content</p>"},
			excludes: []string{"<iframe", "evil.com"},
		},
		{
			name:     "style tag removed",
			input:    "<style>body{display:none}</style><p>Content</p>",
			contains: []string{"<p>Content</p>"},
			excludes: []string{"<style>", "display:none"},
		},
		{
			name:     "onerror removed",
			input:    `<img src="x" onerror="alert('xss')">`,
			contains: []string{"<img"},
			excludes: []string{"onerror", "alert"},
		},
		{
			name:     "data attributes preserved",
			input:    `<div data-section="about">Content</div>`,
			contains: []string{"data-section", "about", "Content"},
			excludes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.input)

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("Sanitize() result should contain %q, got %q", s, result)
				}
			}

			for _, s := range tt.excludes {
				if strings.Contains(result, s) {
					t.Errorf("Sanitize() result should NOT contain %q, got %q", s, result)
				}
			}
		})
	}
}

func TestSanitizeToHTML(t *testing.T) {
	input := "<p>Welcome <script>alert('xss')</script></p>"
	result := SanitizeToHTML(input)

	if _, ok := interface{}(result).(template.HTML); !ok {
		t.Error("SanitizeToHTML() should return template.HTML type")
	}

	resultStr := string(result)
	if strings.Contains(resultStr, "<script>") {
		t.Error("SanitizeToHTML() should remove script tags")
	}
	if !strings.Contains(resultStr, "<p>Welcome") {
		t.Error("SanitizeToHTML() should preserve safe HTML")
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"", true},
		{"A full-service law firm", true},
		{"<p>Has tags</p>", false},
		{"<strong>Bold</strong>", false},
		{"Fees < 5000 with no closing bracket", true},
		{"Experience > 10 years, no opening bracket", true},
		{"Both symbols: & < >", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got := IsPlainText(tt.content)
			if got != tt.want {
				t.Errorf("IsPlainText(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "empty",
			input:    "",
			contains: []string{},
		},
		{
			name:     "simple text",
			input:    "Established in 1998",
			contains: []string{"<p>", "Established in 1998", "</p>"},
		},
		{
			name:     "newlines converted",
			input:    "Line 1\nLine 2",
			contains: []string{"<br>"},
		},
		{
			name:     "HTML entities escaped",
			input:    "<script>alert('xss')</script>",
			contains: []string{"&lt;script&gt;"},
		},
		{
			name:     "ampersand escaped",
			input:    "Mehta & Associates",
			contains: []string{"&amp;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PlainTextToHTML(tt.input)

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("PlainTextToHTML(%q) should contain %q, got %q", tt.input, s, result)
				}
			}
		})
	}
}

func TestPrepareForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "empty",
			input:    "",
			contains: []string{},
			excludes: []string{},
		},
		{
			name:     "migrated plain text wrapped",
			input:    "A litigation practice of long standing",
			contains: []string{"<p>", "A litigation practice of long standing", "</p>"},
			excludes: []string{},
		},
		{
			name:     "HTML sanitized",
			input:    "<p>Our history</p><script>bad</script>",
			contains: []string{"<p>Our history</p>"},
			excludes: []string{"<script>", "bad"},
		},
		{
			name:     "script-only input fully stripped",
			input:    "<script>alert('xss')</script>",
			contains: []string{},
			excludes: []string{"<script>", "alert", "xss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PrepareForDisplay(tt.input)
			resultStr := string(result)

			for _, s := range tt.contains {
				if !strings.Contains(resultStr, s) {
					t.Errorf("PrepareForDisplay(%q) should contain %q, got %q", tt.input, s, resultStr)
				}
			}

			for _, s := range tt.excludes {
				if strings.Contains(resultStr, s) {
					t.Errorf("PrepareForDisplay(%q) should NOT contain %q, got %q", tt.input, s, resultStr)
				}
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	input := "<p>We handle <strong>insolvency</strong> matters.</p>"

	result1 := Sanitize(input)
	result2 := Sanitize(result1)

	if result1 != result2 {
		t.Errorf("Sanitize() not idempotent: first=%q, second=%q", result1, result2)
	}
}

func TestSanitize_ListElements(t *testing.T) {
	input := "<ul><li>Corporate advisory</li><li>Dispute resolution</li></ul>"
	result := Sanitize(input)

	if !strings.Contains(result, "<ul>") {
		t.Error("Sanitize() should preserve <ul>")
	}
	if !strings.Contains(result, "<li>") {
		t.Error("Sanitize() should preserve <li>")
	}
}

func TestSanitize_FormattingElements(t *testing.T) {
	tests := []struct {
		tag   string
		input string
	}{
		{"strong", "<strong>Bold</strong>"},
		{"em", "<em>Italic</em>"},
		{"u", "<u>Underline</u>"},
		{"s", "<s>Strikethrough</s>"},
		{"sub", "<sub>Subscript</sub>"},
		{"sup", "<sup>Superscript</sup>"},
		{"mark", "<mark>Highlighted</mark>"},
		{"blockquote", "<blockquote>Quote</blockquote>"},
		{"code", "<code>Code</code>"},
		{"pre", "<pre>Preformatted</pre>"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			result := Sanitize(tt.input)
			if !strings.Contains(result, "<"+tt.tag+">") {
				t.Errorf("Sanitize() should preserve <%s>, got %q", tt.tag, result)
			}
		})
	}
}
