package internal

import (
	"context"
	"strings"

	"crosswarped.com/lbx/pkg/primitives"
)

type LegalWordsParams struct {
	Words         []string
	MinWordLength *int
	MaxWordLength *int
}

type params struct {
	words         []string
	minWordLength int
	maxWordLength int // 0 means unbounded
}

func asParams(p LegalWordsParams) params {
	pp := params{
		words: p.Words,
	}

	if p.MinWordLength == nil {
		pp.minWordLength = 4
	} else {
		pp.minWordLength = *p.MinWordLength
	}

	if p.MaxWordLength != nil {
		pp.maxWordLength = *p.MaxWordLength
	}

	return pp
}

// LegalWords filters a raw dictionary down to the words playable on the
// puzzle. Input order is preserved and duplicates (by normalized text)
// are dropped, so the result is deterministic for a given dictionary.
func LegalWords(ctx context.Context, puzzle *primitives.Puzzle, p LegalWordsParams) ([]primitives.LegalWord, error) {
	pp := asParams(p)

	seen := make(map[string]bool, len(pp.words))
	var legal []primitives.LegalWord
	for _, raw := range pp.words {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		word, ok := tryAccept(raw, puzzle, pp.minWordLength, pp.maxWordLength)
		if !ok || seen[word.Text] {
			continue
		}
		seen[word.Text] = true
		legal = append(legal, word)
	}
	return legal, nil
}

// tryAccept normalizes one candidate and checks it against the puzzle
// rules. Rejection is silent: bad dictionary entries are data to skip,
// never errors.
func tryAccept(raw string, puzzle *primitives.Puzzle, minLength, maxLength int) (primitives.LegalWord, bool) {
	word := strings.ToLower(strings.TrimSpace(raw))
	runes := []rune(word)

	if len(runes) < minLength {
		return primitives.LegalWord{}, false
	}
	if maxLength > 0 && len(runes) > maxLength {
		return primitives.LegalWord{}, false
	}

	// One walk covers both rules: every letter must be on the box, and
	// consecutive letters must come from different sides.
	prevSide := -1
	for _, r := range runes {
		side, ok := puzzle.SideOf(r)
		if !ok || side == prevSide {
			return primitives.LegalWord{}, false
		}
		prevSide = side
	}

	return primitives.MakeLegalWord(word), true
}
