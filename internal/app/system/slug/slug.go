// internal/app/system/slug/slug.go
package slug

import "strings"

// Derive converts a title into a URL slug: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, and leading or
// trailing hyphens trimmed. "Company Law (NCLT / NCLAT)" becomes
// "company-law-nclt-nclat".
func Derive(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// IsValid reports whether s is already in slug form (non-empty, lowercase
// alphanumerics separated by single hyphens).
func IsValid(s string) bool {
	return s != "" && s == Derive(s)
}
