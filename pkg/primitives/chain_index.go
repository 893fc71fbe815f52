package primitives

// LegalWord is a dictionary word playable on the puzzle: every letter is
// on the box and no two consecutive letters share a side.
type LegalWord struct {
	Text    string
	First   rune
	Last    rune
	Letters LetterSet
}

// MakeLegalWord derives the first letter, last letter, and distinct
// letter set from normalized text.
//
// Legality is the word filter's job, not this constructor's: the text
// must already be lowercase, non-empty, and puzzle-legal.
func MakeLegalWord(text string) LegalWord {
	runes := []rune(text)
	var letters LetterSet
	for _, r := range runes {
		_ = letters.Add(r)
	}
	return LegalWord{
		Text:    text,
		First:   runes[0],
		Last:    runes[len(runes)-1],
		Letters: letters,
	}
}

// ChainIndex groups legal words by first letter, answering "which words
// can follow a word ending in c" in one map lookup.
//
// Within each letter, words keep the relative order they had in the
// filtered dictionary so enumeration order is reproducible across runs.
// The index is built once and read-only afterwards, safe to share.
type ChainIndex struct {
	byFirst map[rune][]LegalWord
	size    int
}

// BuildChainIndex builds the index over the filtered word list.
func BuildChainIndex(words []LegalWord) *ChainIndex {
	index := &ChainIndex{
		byFirst: make(map[rune][]LegalWord),
		size:    len(words),
	}
	for _, w := range words {
		index.byFirst[w.First] = append(index.byFirst[w.First], w)
	}
	return index
}

// Lookup returns the words starting with the given letter, in dictionary
// order. Letters that begin no word yield an empty slice, not an error.
func (c *ChainIndex) Lookup(r rune) []LegalWord {
	return c.byFirst[r]
}

// Len returns the total number of indexed words.
func (c *ChainIndex) Len() int {
	return c.size
}
