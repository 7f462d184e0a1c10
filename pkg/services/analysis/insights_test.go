package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInsights_WordExtremesFirstSeenWins(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	insights := ExtractInsights(Tokenize(text), SplitSentences(text), SplitParagraphs(text))

	// quick, brown and jumps are all 5 characters; quick comes first.
	assert.Equal(t, "quick", insights.LongestWord)
	// The, fox and dog are all 3 characters; The comes first, surface preserved.
	assert.Equal(t, "The", insights.ShortestWord)
}

func TestExtractInsights_SentenceExtremes(t *testing.T) {
	text := "One. Two three four five. Six seven."
	insights := ExtractInsights(Tokenize(text), SplitSentences(text), SplitParagraphs(text))

	assert.Equal(t, 4, insights.LongestSentenceWords)
	assert.Equal(t, 1, insights.ShortestSentenceWords)
}

func TestExtractInsights_ParagraphStats(t *testing.T) {
	text := "one two three\n\nfour five\n\nsix"
	insights := ExtractInsights(Tokenize(text), SplitSentences(text), SplitParagraphs(text))

	assert.Equal(t, 3, insights.ParagraphCount)
	assert.InDelta(t, 2.0, insights.AvgParagraphWords, 1e-9)
}

func TestExtractInsights_EmptyInput(t *testing.T) {
	insights := ExtractInsights(nil, nil, nil)

	assert.Empty(t, insights.LongestWord)
	assert.Empty(t, insights.ShortestWord)
	assert.Zero(t, insights.LongestSentenceWords)
	assert.Zero(t, insights.ShortestSentenceWords)
	assert.Zero(t, insights.ParagraphCount)
	assert.Zero(t, insights.AvgParagraphWords)
}
