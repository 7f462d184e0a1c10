package analysis

import (
	"strings"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// ScoreReadability computes the Flesch Reading Ease and Flesch-Kincaid
// Grade Level scores. With zero words or zero sentences both scores
// are the 0 sentinel and the level label is derived from that sentinel;
// this is an explicit branch, never a division fault.
func ScoreReadability(tokens []domain.Token, sentences []domain.Sentence) domain.Readability {
	if len(tokens) == 0 || len(sentences) == 0 {
		return domain.Readability{Level: ReadingLevel(0)}
	}

	totalSyllables := 0
	for _, tok := range tokens {
		totalSyllables += CountSyllables(tok.Folded)
	}

	avgSentenceLength := float64(len(tokens)) / float64(len(sentences))
	avgSyllablesPerWord := float64(totalSyllables) / float64(len(tokens))

	ease := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllablesPerWord
	grade := 0.39*avgSentenceLength + 11.8*avgSyllablesPerWord - 15.59

	return domain.Readability{
		FleschReadingEase:   ease,
		FleschKincaidGrade:  grade,
		Level:               ReadingLevel(ease),
		AvgSentenceLength:   avgSentenceLength,
		AvgSyllablesPerWord: avgSyllablesPerWord,
	}
}

// CountSyllables approximates the syllable count of a word by counting
// vowel-group transitions: a run of vowels (a, e, i, o, u, y) preceded
// by a non-vowel or word start counts once. A trailing silent 'e'
// drops one group when at least one remains, and every non-empty word
// counts at least one syllable. Deliberately the same heuristic
// everywhere scores are produced so numbers stay comparable; it will
// misestimate some irregular English words.
func CountSyllables(word string) int {
	if word == "" {
		return 0
	}

	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// ReadingLevel buckets a Flesch Reading Ease score into its standard
// difficulty label.
func ReadingLevel(ease float64) string {
	switch {
	case ease >= 90:
		return "Very Easy"
	case ease >= 80:
		return "Easy"
	case ease >= 70:
		return "Fairly Easy"
	case ease >= 60:
		return "Standard"
	case ease >= 50:
		return "Fairly Difficult"
	case ease >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}
