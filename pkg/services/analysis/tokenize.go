package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// Tokenize splits text into maximal runs of letters and digits. Each
// token keeps its surface form and a case-folded copy for counting.
// Empty or whitespace-only input yields an empty slice, never an error.
func Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	i := 0

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}

		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}

		surface := text[start:i]
		tokens = append(tokens, domain.Token{
			Surface: surface,
			Folded:  strings.ToLower(surface),
		})
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
