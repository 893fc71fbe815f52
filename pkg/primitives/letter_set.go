package primitives

import (
	"fmt"
	"math/bits"
)

// LetterSet efficiently represents a set of lowercase ASCII letters.
//
// The zero value is the empty set. Sets are comparable, so two sets are
// equal exactly when they contain the same letters.
type LetterSet uint32

// Add adds a letter to the set.
func (s *LetterSet) Add(r rune) error {
	if r < 'a' || r > 'z' {
		return fmt.Errorf("letter %c is out of range", r)
	}
	*s |= 1 << (r - 'a')
	return nil
}

// AddAll adds all letters from another set to this set.
func (s *LetterSet) AddAll(other LetterSet) {
	*s |= other
}

// Contains checks if a letter is in the set.
func (s LetterSet) Contains(r rune) bool {
	if r < 'a' || r > 'z' {
		return false
	}
	return s&(1<<(r-'a')) != 0
}

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Union returns a new set holding every letter of either set.
func (s LetterSet) Union(other LetterSet) LetterSet {
	return s | other
}

// Covers reports whether every letter of other is also in s.
func (s LetterSet) Covers(other LetterSet) bool {
	return s&other == other
}

func (s LetterSet) String() string {
	letters := make([]rune, 0, s.Count())
	for r := 'a'; r <= 'z'; r++ {
		if s.Contains(r) {
			letters = append(letters, r)
		}
	}
	return fmt.Sprintf("LetterSet(%s)", string(letters))
}
