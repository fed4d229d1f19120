package telegram

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage splits text into chunks of at most maxLen runes, preferring to
// break at a newline when one falls in the second half of the chunk.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			parts = append(parts, string(runes))
			break
		}

		// The newline search stays in rune space; a byte index would land
		// mid-rune once multibyte text precedes the newline.
		splitAt := maxLen
		for i := maxLen - 1; i > maxLen/2; i-- {
			if runes[i] == '\n' {
				splitAt = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:splitAt]))
		runes = runes[splitAt:]
	}
	return parts
}

// BalanceMarkdown closes dangling code fences and inline code so Telegram's
// markdown parser does not reject the message. Model output is the usual
// offender.
func BalanceMarkdown(text string) string {
	if strings.Count(text, "```")%2 != 0 {
		text += "\n```"
	}

	var b strings.Builder
	inBlock := false
	inlineOpen := false
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && string(runes[i:i+3]) == "```" {
			if inlineOpen {
				b.WriteRune('`')
				inlineOpen = false
			}
			inBlock = !inBlock
			b.WriteString("```")
			i += 2
			continue
		}
		if !inBlock && runes[i] == '`' {
			inlineOpen = !inlineOpen
		}
		b.WriteRune(runes[i])
	}
	if inlineOpen {
		b.WriteRune('`')
	}
	return b.String()
}
