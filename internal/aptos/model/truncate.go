package model

import "unicode/utf8"

// Truncate cuts s to at most maxChars characters without splitting a multi-byte rune.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	count := 0
	for i := range s {
		if count == maxChars {
			return s[:i]
		}
		count++
	}
	return s
}
