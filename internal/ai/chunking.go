package ai

import (
	"log"
	"unicode/utf8"
)

// TruncateToLimit is a simple truncation for when the caller opts into an input cap.
// The limit counts characters (runes), not bytes. A non-positive limit disables truncation.
func TruncateToLimit(content string, maxChars int) string {
	if maxChars <= 0 {
		return content
	}
	total := utf8.RuneCountInString(content)
	if total <= maxChars {
		return content
	}
	log.Printf("[Chunking] Truncating from %d to %d chars", total, maxChars)

	cut, n := 0, 0
	for i := range content {
		if n == maxChars {
			cut = i
			break
		}
		n++
	}
	return content[:cut] + "\n...[truncated]"
}

// EstimateTokens provides a rough token count (4 chars ≈ 1 token)
func EstimateTokens(content string) int {
	return len(content) / 4
}
