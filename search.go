package lbx

import (
	"context"

	"crosswarped.com/lbx/pkg/primitives"
)

// searchState is the mutable state of one depth-first search. A single
// chain is pushed and popped in place, so sibling branches never see
// each other's state and peak memory stays proportional to maxDepth.
type searchState struct {
	index          *primitives.ChainIndex
	alphabet       primitives.LetterSet
	maxDepth       int
	noRepeatWords  bool
	maxWordLetters int

	chain   []primitives.LegalWord
	covered []primitives.LetterSet // covered[i] is the letter union over chain[:i+1]
}

// extend pushes w onto the chain, records a solution or recurses into
// every word starting with w's last letter, then pops. It returns false
// once the consumer stops taking solutions.
func (s *searchState) extend(ctx context.Context, w primitives.LegalWord, yield func(Solution) bool) bool {
	if ctx.Err() != nil {
		return false
	}

	covered := w.Letters
	if n := len(s.covered); n > 0 {
		covered = covered.Union(s.covered[n-1])
	}
	s.chain = append(s.chain, w)
	s.covered = append(s.covered, covered)

	more := true
	depth := len(s.chain)
	switch {
	case covered == s.alphabet:
		// Full coverage: report this chain and backtrack without
		// extending it further.
		more = yield(makeSolution(chainWords(s.chain)))
	case depth == s.maxDepth:
		// Depth exhausted without covering the alphabet.
	case s.alphabet.Count()-covered.Count() > (s.maxDepth-depth)*s.maxWordLetters:
		// The remaining words cannot introduce enough missing letters.
	default:
		for _, next := range s.index.Lookup(w.Last) {
			if s.noRepeatWords && chainContains(s.chain, next.Text) {
				continue
			}
			if !s.extend(ctx, next, yield) {
				more = false
				break
			}
		}
	}

	s.chain = s.chain[:len(s.chain)-1]
	s.covered = s.covered[:len(s.covered)-1]
	return more
}

func chainWords(chain []primitives.LegalWord) []string {
	words := make([]string, len(chain))
	for i, w := range chain {
		words[i] = w.Text
	}
	return words
}

func chainContains(chain []primitives.LegalWord, text string) bool {
	for _, w := range chain {
		if w.Text == text {
			return true
		}
	}
	return false
}
