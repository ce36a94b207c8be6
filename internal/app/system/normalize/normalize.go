// Package normalize provides the canonical string normalizations used
// before storage and comparison. Use these instead of scattered
// strings.ToLower and strings.TrimSpace calls.
package normalize

import "strings"

// Email trims whitespace and lowercases. Admin emails are stored and
// matched in this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role trims whitespace and lowercases a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status trims whitespace and lowercases a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
