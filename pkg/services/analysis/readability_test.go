package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"quick", 1},
		{"over", 2},
		{"lazy", 2},
		{"beautiful", 3},
		{"cake", 1},      // silent e
		{"readable", 2},  // three vowel groups, one dropped for the silent trailing e
		{"rhythm", 1},    // y as the only vowel group
		{"e", 1},         // silent-e subtraction never drops below 1
		{"strength", 1},
		{"1234", 1}, // digit-only token still counts one syllable
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSyllables(tt.word))
		})
	}
}

func TestCountSyllables_AtLeastOneForNonEmpty(t *testing.T) {
	for _, w := range []string{"a", "b", "xyz", "e", "ee", "pssst"} {
		assert.GreaterOrEqual(t, CountSyllables(w), 1, "word: %q", w)
	}
	assert.Zero(t, CountSyllables(""))
}

func TestScoreReadability_FoxSentence(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	r := ScoreReadability(Tokenize(text), SplitSentences(text))

	// 9 words, 1 sentence, 11 syllables.
	assert.InDelta(t, 9.0, r.AvgSentenceLength, 1e-9)
	assert.InDelta(t, 11.0/9.0, r.AvgSyllablesPerWord, 1e-9)
	assert.InDelta(t, 206.835-1.015*9-84.6*(11.0/9.0), r.FleschReadingEase, 1e-9)
	assert.InDelta(t, 0.39*9+11.8*(11.0/9.0)-15.59, r.FleschKincaidGrade, 1e-9)
	assert.Equal(t, "Very Easy", r.Level)
}

func TestScoreReadability_ZeroSentinel(t *testing.T) {
	// Explicit branch, not a recovered division fault.
	r := ScoreReadability(nil, nil)

	assert.Zero(t, r.FleschReadingEase)
	assert.Zero(t, r.FleschKincaidGrade)
	assert.Equal(t, "Very Difficult", r.Level, "level derives from the 0 sentinel")
}

func TestReadingLevel_Buckets(t *testing.T) {
	tests := []struct {
		ease float64
		want string
	}{
		{95, "Very Easy"},
		{90, "Very Easy"},
		{85, "Easy"},
		{75, "Fairly Easy"},
		{65, "Standard"},
		{55, "Fairly Difficult"},
		{35, "Difficult"},
		{29.9, "Very Difficult"},
		{0, "Very Difficult"},
		{-20, "Very Difficult"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReadingLevel(tt.ease), "ease: %v", tt.ease)
	}
}
