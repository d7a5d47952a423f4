package wordfreq

// IgnoreSet holds words that are never counted.
type IgnoreSet map[string]struct{}

// NewIgnoreSet returns an IgnoreSet holding words.
func NewIgnoreSet(words ...string) IgnoreSet {
	s := make(IgnoreSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is ignored. A nil set ignores nothing.
func (s IgnoreSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the ignored words in no particular order.
func (s IgnoreSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	return words
}

// Frequencies maps a word to the number of times it occurred.
// Words are case-sensitive.
type Frequencies map[string]int

// Count adds words to f, skipping empty words and words in ignore.
func (f Frequencies) Count(words []string, ignore IgnoreSet) {
	for _, w := range words {
		if w == "" || ignore.Contains(w) {
			continue
		}
		f[w]++
	}
}

// Tally normalizes every fragment and counts the resulting words.
func Tally(fragments []string, ignore IgnoreSet) Frequencies {
	f := make(Frequencies)
	for _, fragment := range fragments {
		f.Count(Normalize(fragment), ignore)
	}
	return f
}
