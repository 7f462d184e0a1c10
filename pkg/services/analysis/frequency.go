package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// WordFrequency counts case-folded tokens, discarding stop words and
// tokens shorter than minLength, and returns the topN entries by count
// descending. Ties are broken by first occurrence order; that ordering
// is part of the contract, not an accident of map iteration.
func WordFrequency(tokens []domain.Token, stopWords map[string]struct{}, minLength, topN int) []domain.WordCount {
	counts := make(map[string]int)
	var order []string

	for _, tok := range tokens {
		w := tok.Folded
		if utf8.RuneCountInString(w) < minLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	return topCounts(order, counts, topN)
}

// PhraseFrequency counts overlapping windows of n consecutive folded
// tokens joined by single spaces. No stop-word or length filtering is
// applied: phrases are built over the full token stream. Ordering
// follows the same count-descending, first-seen tie-break rule as
// WordFrequency.
func PhraseFrequency(tokens []domain.Token, n, topN int) []domain.PhraseCount {
	counts := make(map[string]int)
	var order []string

	if n >= 1 {
		words := make([]string, len(tokens))
		for i, tok := range tokens {
			words[i] = tok.Folded
		}

		for i := 0; i+n <= len(words); i++ {
			p := strings.Join(words[i:i+n], " ")
			if _, seen := counts[p]; !seen {
				order = append(order, p)
			}
			counts[p]++
		}
	}

	ranked := topCounts(order, counts, topN)
	out := make([]domain.PhraseCount, 0, len(ranked))
	for _, wc := range ranked {
		out = append(out, domain.PhraseCount{Phrase: wc.Word, Count: wc.Count})
	}
	return out
}

func topCounts(order []string, counts map[string]int, topN int) []domain.WordCount {
	ranked := make([]domain.WordCount, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, domain.WordCount{Word: w, Count: counts[w]})
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
