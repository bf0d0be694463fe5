// Package bot implements the intent-recognition, context-tracking and
// response-generation pipeline behind the chat endpoint.
package bot

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, strips characters that are not word characters
// or whitespace, collapses whitespace runs to a single space and trims the
// ends. Classification and entity extraction operate on normalized text.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = nonWordPattern.ReplaceAllString(t, "")
	t = whitespacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
