// Package chunker splits exercise text into bounded segments for a
// rate-limited synthesis provider.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultMaxLen is the longest text the synthesis provider accepts per call.
const DefaultMaxLen = 150

var sentenceRegexp = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Split breaks text into ordered, sentence-respecting segments of at most
// maxLen characters. A sentence longer than maxLen is truncated, not split
// further. Whitespace-only segments are dropped. When no sentence boundary
// exists the whole text comes back as a single truncated segment.
func Split(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	sentences := sentenceRegexp.FindAllString(text, -1)
	if sentences == nil {
		sentences = []string{text}
	}

	segments := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		segments = append(segments, truncate(trimmed, maxLen))
	}
	return segments
}

// truncate cuts s to at most maxLen characters without splitting a rune.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
