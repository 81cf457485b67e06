package prep

import (
	"html"
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`http[s]?://[^\s]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText decodes HTML entities, strips URLs and collapses whitespace.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = html.UnescapeString(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
