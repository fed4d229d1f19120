package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShort(t *testing.T) {
	parts := SplitMessage("hello", 100)
	assert.Equal(t, []string{"hello"}, parts)
}

func TestSplitMessageLong(t *testing.T) {
	text := strings.Repeat("x", 250)
	parts := SplitMessage(text, 100)
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 100)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("a", 80) + "\n" + strings.Repeat("b", 80)
	parts := SplitMessage(text, 100)
	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("a", 80)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("b", 80), parts[1])
}

func TestSplitMessageIgnoresEarlyNewline(t *testing.T) {
	// A newline before the midpoint is not worth a tiny chunk.
	text := "ab\n" + strings.Repeat("c", 120)
	parts := SplitMessage(text, 100)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 100)
}

func TestSplitMessageMultibyte(t *testing.T) {
	text := strings.Repeat("🌞", 150)
	parts := SplitMessage(text, 100)
	require.Len(t, parts, 2)
	for _, p := range parts {
		assert.True(t, utf8.ValidString(p))
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 100)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessageMultibyteBeforeNewline(t *testing.T) {
	// Emoji ahead of the newline must not skew the split index.
	text := strings.Repeat("🌞", 60) + "\n" + strings.Repeat("a", 45)
	parts := SplitMessage(text, 100)
	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("🌞", 60)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("a", 45), parts[1])
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 100)
	}
}

func TestBalanceMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"balanced untouched", "plain text with `code` and ```go\nblock\n```", "plain text with `code` and ```go\nblock\n```"},
		{"closes dangling fence", "```go\nfunc main() {", "```go\nfunc main() {\n```"},
		{"closes dangling inline", "use `fmt.Println", "use `fmt.Println`"},
		{"no markdown", "just a sentence", "just a sentence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BalanceMarkdown(tt.in))
		})
	}
}

func TestBalanceMarkdownAlwaysEven(t *testing.T) {
	inputs := []string{
		"``` one fence",
		"`a` `b",
		"```\ncode\n``` and `tail",
	}
	for _, in := range inputs {
		out := BalanceMarkdown(in)
		assert.Zero(t, strings.Count(out, "```")%2, "fences unbalanced in %q", out)
		stripped := strings.ReplaceAll(out, "```", "")
		assert.Zero(t, strings.Count(stripped, "`")%2, "inline ticks unbalanced in %q", out)
	}
}
