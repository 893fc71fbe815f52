package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPuzzle is returned when four side definitions do not form a
// valid box. Callers can test for it with errors.Is.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

const (
	NumSides       = 4
	LettersPerSide = 3
)

// Puzzle is the box itself: four sides of three distinct letters each,
// twelve letters total. It is immutable once constructed.
type Puzzle struct {
	sides    [NumSides]string
	letters  []rune // all twelve letters, in side-declaration order
	sideOf   [26]int8
	alphabet LetterSet
}

// NewPuzzle builds a puzzle from the four sides, normalizing case.
//
// Side order is top, left, bottom, right. That order also fixes the
// iteration order of Letters, which downstream search order depends on.
func NewPuzzle(top, left, bottom, right string) (*Puzzle, error) {
	p := &Puzzle{}
	for i := range p.sideOf {
		p.sideOf[i] = -1
	}

	for si, raw := range []string{top, left, bottom, right} {
		side := strings.ToLower(strings.TrimSpace(raw))
		runes := []rune(side)
		if len(runes) != LettersPerSide {
			return nil, fmt.Errorf("%w: side %d must have exactly %d letters, got %q", ErrInvalidPuzzle, si, LettersPerSide, raw)
		}
		for _, r := range runes {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("%w: side %d contains non-letter %q", ErrInvalidPuzzle, si, r)
			}
			if p.sideOf[r-'a'] != -1 {
				return nil, fmt.Errorf("%w: letter %c appears on more than one position", ErrInvalidPuzzle, r)
			}
			p.sideOf[r-'a'] = int8(si)
			p.letters = append(p.letters, r)
			_ = p.alphabet.Add(r)
		}
		p.sides[si] = side
	}

	return p, nil
}

// Sides returns the normalized sides in top, left, bottom, right order.
func (p *Puzzle) Sides() [NumSides]string {
	return p.sides
}

// Letters returns the twelve letters in side-declaration order.
func (p *Puzzle) Letters() []rune {
	return p.letters
}

// Alphabet returns the set of all twelve letters.
func (p *Puzzle) Alphabet() LetterSet {
	return p.alphabet
}

// SideOf returns the index of the side holding a letter. The second
// return is false for anything outside the puzzle's alphabet; callers
// are expected to pre-filter rather than treat that as an error.
func (p *Puzzle) SideOf(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	side := p.sideOf[r-'a']
	if side < 0 {
		return 0, false
	}
	return int(side), true
}

func (p *Puzzle) String() string {
	return fmt.Sprintf("Puzzle(top=%s, left=%s, bottom=%s, right=%s)", p.sides[0], p.sides[1], p.sides[2], p.sides[3])
}
