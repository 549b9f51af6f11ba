package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	segments := Split("Hello. This is a test.", DefaultMaxLen)
	require.Len(t, segments, 2)
	assert.Equal(t, "Hello.", segments[0])
	assert.Equal(t, "This is a test.", segments[1])
}

func TestSplitKeepsOrder(t *testing.T) {
	text := "One. Two! Three? Four."
	segments := Split(text, DefaultMaxLen)
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Four."}, segments)
}

func TestSplitDeterministic(t *testing.T) {
	text := "A quick brown fox. It jumped! Did it land? Yes."
	first := Split(text, DefaultMaxLen)
	second := Split(text, DefaultMaxLen)
	assert.Equal(t, first, second)
}

func TestSplitReconstructsInput(t *testing.T) {
	text := "The cat sat. The dog barked! Who knew?"
	segments := Split(text, DefaultMaxLen)

	joined := strings.Join(segments, " ")
	assert.Equal(t, text, joined)
}

func TestSplitNoBoundaries(t *testing.T) {
	segments := Split("no terminal punctuation here", DefaultMaxLen)
	require.Len(t, segments, 1)
	assert.Equal(t, "no terminal punctuation here", segments[0])
}

func TestSplitTruncatesLongSentence(t *testing.T) {
	long := strings.Repeat("a", 400) + "."
	segments := Split(long, DefaultMaxLen)
	require.Len(t, segments, 1)
	assert.Len(t, []rune(segments[0]), DefaultMaxLen)
}

func TestSplitTruncatesMultibyteSafely(t *testing.T) {
	long := strings.Repeat("ã", 200) + "."
	segments := Split(long, DefaultMaxLen)
	require.Len(t, segments, 1)
	assert.Equal(t, strings.Repeat("ã", DefaultMaxLen), segments[0])
}

func TestSplitDropsWhitespaceOnly(t *testing.T) {
	assert.Empty(t, Split("   ", DefaultMaxLen))
	assert.Empty(t, Split("", DefaultMaxLen))
}

func TestSplitZeroMaxLenUsesDefault(t *testing.T) {
	long := strings.Repeat("b", 300) + "."
	segments := Split(long, 0)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0], DefaultMaxLen)
}
