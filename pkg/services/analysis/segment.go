package analysis

import (
	"strings"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// SplitSentences scans for '.', '!' and '?' as sentence terminators.
// Consecutive terminators collapse to one boundary, and non-empty text
// after the last terminator is emitted as a final sentence. Text with
// content but no terminator yields exactly one sentence.
func SplitSentences(text string) []domain.Sentence {
	var sentences []domain.Sentence
	var sb strings.Builder

	flush := func() {
		s := strings.TrimSpace(sb.String())
		sb.Reset()
		if s == "" {
			return
		}
		sentences = append(sentences, domain.Sentence{
			Text:      s,
			WordCount: len(Tokenize(s)),
		})
	}

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		sb.WriteRune(r)
	}
	flush()

	return sentences
}

// SplitParagraphs splits text on blank-line boundaries: one or more
// lines that are empty after trimming. Leading and trailing blank runs
// produce no paragraphs.
func SplitParagraphs(text string) []domain.Paragraph {
	var paragraphs []domain.Paragraph
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		p := strings.Join(current, "\n")
		current = current[:0]
		paragraphs = append(paragraphs, domain.Paragraph{
			Text:      p,
			WordCount: len(Tokenize(p)),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}
