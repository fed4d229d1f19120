package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "what is a cme?", Normalize("  What is a CME?  "))
	assert.Equal(t, "", Normalize("   "))
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "**bold**", "bold"},
		{"italic", "*italic*", "italic"},
		{"inline code", "`code`", "code"},
		{"mixed", "**bold** and *italic* and `code`", "bold and italic and code"},
		{"link", "[NOAA](https://swpc.noaa.gov)", "NOAA"},
		{"heading", "## Solar flares", "Solar flares"},
		{"deep heading", "###### note", "note"},
		{"dash bullet", "- first\n- second", "• first\n• second"},
		{"star bullet", "* item", "• item"},
		{"plain text untouched", "no markdown here", "no markdown here"},
		{"unrecognized syntax passes through", "a ~~strike~~ b", "a ~~strike~~ b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdown(tt.in))
		})
	}
}

func TestStripMarkdownIdempotent(t *testing.T) {
	inputs := []string{
		"**bold** and *italic* and `code`",
		"## heading\n- a\n- b",
		"[link](http://x) plain",
		"already plain text",
	}
	for _, in := range inputs {
		once := StripMarkdown(in)
		assert.Equal(t, once, StripMarkdown(once), "input %q", in)
	}
}
