package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// ComputeStats derives the basic counts and averages from text that
// has already been tokenized and segmented. Averages with a zero
// denominator are 0 by definition, not an error.
func ComputeStats(text string, tokens []domain.Token, sentences []domain.Sentence) domain.BasicStats {
	stats := domain.BasicStats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(tokens),
		Sentences:  len(sentences),
	}

	for _, r := range text {
		if !unicode.IsSpace(r) {
			stats.CharactersNoSpaces++
		}
	}

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok.Folded] = struct{}{}
	}
	stats.UniqueWords = len(seen)

	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			stats.Lines++
			if strings.TrimSpace(line) != "" {
				stats.NonEmptyLines++
			}
		}
	}

	if stats.Sentences > 0 {
		stats.AvgWordsPerSentence = float64(stats.Words) / float64(stats.Sentences)
	}
	if stats.Words > 0 {
		stats.AvgCharsPerWord = float64(stats.CharactersNoSpaces) / float64(stats.Words)
	}

	return stats
}
