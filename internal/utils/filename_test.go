package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes invalid characters",
			input:    `file<>:"/\|?*name`,
			expected: "filename",
		},
		{
			name:     "collapses whitespace",
			input:    "Computer\tNetworks\n  Fifth   Edition",
			expected: "Computer Networks Fifth Edition",
		},
		{
			name:     "replaces square brackets",
			input:    "Networks [2nd ed.]",
			expected: "Networks (2nd ed.)",
		},
		{
			name:     "removes hashtags",
			input:    "C# in Depth",
			expected: "C in Depth",
		},
		{
			name:     "returns Untitled for empty",
			input:    "  ",
			expected: "Untitled",
		},
		{
			name:     "truncates long names",
			input:    strings.Repeat("a", 250),
			expected: strings.Repeat("a", 200),
		},
		{
			name:     "keeps unicode",
			input:    "Pamiętnik znaleziony w wannie",
			expected: "Pamiętnik znaleziony w wannie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestTruncateUTF8_DoesNotSplitRunes(t *testing.T) {
	s := strings.Repeat("a", 199) + "ę" // 'ę' is two bytes

	assert.Equal(t, strings.Repeat("a", 199), truncateUTF8(s, 200))
	assert.Equal(t, "abc", truncateUTF8("abc", 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	// 'ę' spans bytes 6 and 7, across the 7 byte cut
	assert.Equal(t, "abcdef...", Truncate("abcdefęghijk", 10))
}
