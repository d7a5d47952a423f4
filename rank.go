package wordfreq

import (
	"cmp"
	"slices"
	"strings"
)

// WordCount is one entry of a ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Rank returns the n most frequent words, ordered by count descending and
// then by word ascending using byte-wise comparison. Fewer than n entries
// are returned when f has fewer distinct words. Returns nil if n < 1.
func Rank(f Frequencies, n int) []WordCount {
	if n < 1 {
		return nil
	}

	ranked := make([]WordCount, 0, len(f))
	for w, c := range f {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}

	slices.SortFunc(ranked, func(a, b WordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return strings.Compare(a.Word, b.Word)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
