package analysis

import (
	"unicode/utf8"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// ExtractInsights derives structural observations from the already
// computed token, sentence and paragraph lists. Longest/shortest are
// strict comparisons, so the first occurrence wins ties.
func ExtractInsights(tokens []domain.Token, sentences []domain.Sentence, paragraphs []domain.Paragraph) domain.Insights {
	insights := domain.Insights{ParagraphCount: len(paragraphs)}

	longest, shortest := -1, -1
	for i, tok := range tokens {
		n := utf8.RuneCountInString(tok.Surface)
		if n == 0 {
			continue
		}
		if longest == -1 || n > utf8.RuneCountInString(tokens[longest].Surface) {
			longest = i
		}
		if shortest == -1 || n < utf8.RuneCountInString(tokens[shortest].Surface) {
			shortest = i
		}
	}
	if longest >= 0 {
		insights.LongestWord = tokens[longest].Surface
		insights.ShortestWord = tokens[shortest].Surface
	}

	for i, s := range sentences {
		if i == 0 {
			insights.LongestSentenceWords = s.WordCount
			insights.ShortestSentenceWords = s.WordCount
			continue
		}
		if s.WordCount > insights.LongestSentenceWords {
			insights.LongestSentenceWords = s.WordCount
		}
		if s.WordCount < insights.ShortestSentenceWords {
			insights.ShortestSentenceWords = s.WordCount
		}
	}

	if len(paragraphs) > 0 {
		total := 0
		for _, p := range paragraphs {
			total += p.WordCount
		}
		insights.AvgParagraphWords = float64(total) / float64(len(paragraphs))
	}

	return insights
}
