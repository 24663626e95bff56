package utils

import (
	"regexp"
	"strings"
)

const maxFilenameLength = 200

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*#]`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)

	// wiki-link syntax in markdown notes breaks on square brackets
	bracketReplacer = strings.NewReplacer("[", "(", "]", ")")
)

// SanitizeFilename turns a book title or ISBN into a portable note name.
// The result is never empty and at most maxFilenameLength bytes.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = bracketReplacer.Replace(name)
	name = strings.TrimSpace(whitespaceRuns.ReplaceAllString(name, " "))

	if len(name) > maxFilenameLength {
		name = strings.TrimSpace(truncateUTF8(name, maxFilenameLength))
	}
	if name == "" {
		return "Untitled"
	}
	return name
}

// Truncate shortens s to at most maxLen bytes, ending in "..." when cut.
// Multi-byte runes are never split.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return truncateUTF8(s, maxLen-3) + "..."
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	return s[:cut]
}
