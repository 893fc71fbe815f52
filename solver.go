package lbx

import (
	"context"
	"fmt"
	"iter"

	"crosswarped.com/lbx/internal"
	"crosswarped.com/lbx/pkg/primitives"
)

// Solver enumerates word chains that solve a Letter Boxed puzzle.
type Solver struct {
	Words         []string
	MinWordLength *int
	MaxWordLength *int
	MaxDepth      int
	NoRepeatWords bool

	puzzle *primitives.Puzzle

	// Do not access these fields directly, use the chainIndex method instead.
	lazyIndex          *primitives.ChainIndex
	lazyMaxWordLetters int
}

type SolverParams struct {
	MinWordLength int
	MaxWordLength int
	MaxDepth      int

	// NoRepeatWords forbids using the same word twice within one chain.
	// By default a word may recur wherever the chain links allow it.
	NoRepeatWords bool
}

const defaultMaxDepth = 4

// CreateSolver validates the four sides and prepares a solver over the
// given raw dictionary. Side order is top, left, bottom, right.
//
// A malformed puzzle is the only way to fail here; finding no solutions
// later is a valid outcome, not an error.
func CreateSolver(top, left, bottom, right string, words []string, params SolverParams) (*Solver, error) {
	puzzle, err := primitives.NewPuzzle(top, left, bottom, right)
	if err != nil {
		return nil, fmt.Errorf("create solver: %w", err)
	}

	var minWordLength, maxWordLength *int
	if params.MinWordLength > 0 {
		minWordLength = &params.MinWordLength
	}
	if params.MaxWordLength > 0 {
		maxWordLength = &params.MaxWordLength
	}

	maxDepth := params.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	return &Solver{
		Words:         words,
		MinWordLength: minWordLength,
		MaxWordLength: maxWordLength,
		MaxDepth:      maxDepth,
		NoRepeatWords: params.NoRepeatWords,
		puzzle:        puzzle,
	}, nil
}

// Puzzle returns the validated puzzle.
func (s *Solver) Puzzle() *primitives.Puzzle {
	return s.puzzle
}

func (s *Solver) chainIndex(ctx context.Context) (*primitives.ChainIndex, int, error) {
	if s.lazyIndex == nil {
		legal, err := internal.LegalWords(ctx, s.puzzle, internal.LegalWordsParams{
			Words:         s.Words,
			MinWordLength: s.MinWordLength,
			MaxWordLength: s.MaxWordLength,
		})
		if err != nil {
			return nil, 0, err
		}
		for _, w := range legal {
			if c := w.Letters.Count(); c > s.lazyMaxWordLetters {
				s.lazyMaxWordLetters = c
			}
		}
		s.lazyIndex = primitives.BuildChainIndex(legal)
	}
	return s.lazyIndex, s.lazyMaxWordLetters, nil
}

// Solutions returns a lazy sequence of every chain of 1..MaxDepth words
// whose letters cover the full alphabet.
//
// Enumeration order is deterministic: starting letters in the puzzle's
// side-declaration order, then dictionary order at every extension step.
// A chain is reported the moment coverage completes and is never
// extended further; sibling branches are still explored.
func (s *Solver) Solutions(ctx context.Context) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		index, maxWordLetters, err := s.chainIndex(ctx)
		if err != nil {
			return
		}

		state := &searchState{
			index:          index,
			alphabet:       s.puzzle.Alphabet(),
			maxDepth:       s.MaxDepth,
			noRepeatWords:  s.NoRepeatWords,
			maxWordLetters: maxWordLetters,
		}

		for _, c := range s.puzzle.Letters() {
			for _, w := range index.Lookup(c) {
				if !state.extend(ctx, w, yield) {
					return
				}
			}
		}
	}
}

// Solve runs the search eagerly and collects every solution in
// discovery order. The returned error is non-nil only when the context
// was cancelled; an empty set simply means no chain under these bounds.
func (s *Solver) Solve(ctx context.Context) (*SolutionSet, error) {
	set := &SolutionSet{}
	for solution := range s.Solutions(ctx) {
		set.Add(solution)
	}
	return set, ctx.Err()
}
