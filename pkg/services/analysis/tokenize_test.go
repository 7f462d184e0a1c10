package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_SplitsOnNonAlphanumericRuns(t *testing.T) {
	tokens := Tokenize("Hello, world! It's 2024.")

	surfaces := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		surfaces = append(surfaces, tok.Surface)
	}

	assert.Equal(t, []string{"Hello", "world", "It", "s", "2024"}, surfaces)
}

func TestTokenize_FoldsCaseButKeepsSurface(t *testing.T) {
	tokens := Tokenize("GoLang")

	assert.Len(t, tokens, 1)
	assert.Equal(t, "GoLang", tokens[0].Surface)
	assert.Equal(t, "golang", tokens[0].Folded)
}

func TestTokenize_EmptyAndWhitespaceInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t\n  "))
	assert.Empty(t, Tokenize("!!! ... ???"))
}

func TestTokenize_UnicodeLetters(t *testing.T) {
	tokens := Tokenize("Übung café naïve")

	assert.Len(t, tokens, 3)
	assert.Equal(t, "Übung", tokens[0].Surface)
	assert.Equal(t, "übung", tokens[0].Folded)
	assert.Equal(t, "café", tokens[1].Surface)
	assert.Equal(t, "naïve", tokens[2].Surface)
}
