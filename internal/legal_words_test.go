package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/lbx/pkg/primitives"
)

func testPuzzle(t *testing.T) *primitives.Puzzle {
	t.Helper()
	puzzle, err := primitives.NewPuzzle("ihy", "aws", "ern", "ftl")
	require.NoError(t, err)
	return puzzle
}

func texts(words []primitives.LegalWord) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func TestLegalWords_Filtering(t *testing.T) {
	words := []string{
		"FAINT",  // accepted, normalized
		"faint",  // duplicate of the above after normalization
		"zany",   // 'z' is not on the box
		"hi",     // below default min length
		"wash",   // 'w' and 'a' share the left side
		"earn",   // 'r' and 'n' share the bottom side
		"it's",   // apostrophe is not a puzzle letter
		"theist", // accepted
		"twirly", // accepted
	}

	legal, err := LegalWords(t.Context(), testPuzzle(t), LegalWordsParams{Words: words})
	require.NoError(t, err)

	assert.Equal(t, []string{"faint", "theist", "twirly"}, texts(legal))
}

func TestLegalWords_LengthBounds(t *testing.T) {
	words := []string{"yeti", "tithe", "theist", "earthly"}

	minLen := 5
	maxLen := 6
	legal, err := LegalWords(t.Context(), testPuzzle(t), LegalWordsParams{
		Words:         words,
		MinWordLength: &minLen,
		MaxWordLength: &maxLen,
	})
	require.NoError(t, err)

	// yeti is too short, earthly too long.
	assert.Equal(t, []string{"tithe", "theist"}, texts(legal))
}

func TestLegalWords_MaxUnboundedByDefault(t *testing.T) {
	legal, err := LegalWords(t.Context(), testPuzzle(t), LegalWordsParams{
		Words: []string{"earthly"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"earthly"}, texts(legal))
}

func TestTryAccept_DerivedFields(t *testing.T) {
	word, ok := tryAccept("Faint", testPuzzle(t), 4, 0)
	require.True(t, ok)

	assert.Equal(t, "faint", word.Text)
	assert.Equal(t, 'f', word.First)
	assert.Equal(t, 't', word.Last)
	assert.Equal(t, 5, word.Letters.Count())
	for _, r := range "faint" {
		assert.True(t, word.Letters.Contains(r), "letter %q missing from set", r)
	}
}

func TestLegalWords_AdjacencyHoldsForAll(t *testing.T) {
	puzzle := testPuzzle(t)
	words := []string{"faint", "theist", "twirly", "tithe", "trays", "train", "infest", "wharf", "shale"}

	legal, err := LegalWords(t.Context(), puzzle, LegalWordsParams{Words: words})
	require.NoError(t, err)
	require.Len(t, legal, len(words))

	for _, w := range legal {
		prevSide := -1
		for _, r := range w.Text {
			side, ok := puzzle.SideOf(r)
			require.True(t, ok, "word %q has letter %q off the box", w.Text, r)
			assert.NotEqual(t, prevSide, side, "word %q repeats side %d", w.Text, side)
			prevSide = side
		}
	}
}
