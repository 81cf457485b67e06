package prep

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\b\d{10}\b`)
)

// RedactPII replaces email addresses and 10-digit phone numbers before a post
// is stored. Content is kept, identifiers are not.
func RedactPII(text string) string {
	text = emailPattern.ReplaceAllString(text, "[EMAIL REDACTED]")
	text = phonePattern.ReplaceAllString(text, "[PHONE REDACTED]")
	return text
}
