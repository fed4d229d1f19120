package service

import (
	"regexp"
	"strings"
)

var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	codeRe    = regexp.MustCompile("`([^`]*)`")
	linkRe    = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRe = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	bulletRe  = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)
)

// Normalize lower-cases and trims free-text input for classification.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// StripMarkdown removes common markdown decoration, keeping the inner text.
// Bold, italic, inline code and link syntax collapse to their contents,
// heading markers are dropped and list dashes become a bullet glyph.
// Unrecognized syntax passes through unchanged.
func StripMarkdown(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	// Bullets before italic so a leading "* " is not mistaken for emphasis.
	text = bulletRe.ReplaceAllString(text, "• ")
	text = italicRe.ReplaceAllString(text, "$1")
	text = codeRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "")
	return text
}
