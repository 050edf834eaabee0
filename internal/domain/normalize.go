package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FoldText prepares text for literal pattern matching:
//   - composes the text to NFC, so "ç" typed as "c" + U+0327 equals U+00E7
//   - converts to lowercase with the locale-independent mapping
//
// Whitespace and punctuation are left untouched: patterns rely on them.
func FoldText(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToLower(norm.NFC.String(text))
}

// NormalizeTag trims and lowercases a short identifier such as a language
// tag or an error type.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
