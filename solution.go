package lbx

import (
	"fmt"
	"iter"
	"strings"
)

// Solution is an ordered chain of words, each starting with the previous
// word's last letter, that together cover all twelve puzzle letters.
//
// It represents one finished chain and is immutable once recorded.
type Solution struct {
	words []string
}

func makeSolution(words []string) Solution {
	return Solution{words: words}
}

// Words returns the chain's words in order.
func (s Solution) Words() []string {
	return s.words
}

// Len returns the number of words in the chain.
func (s Solution) Len() int {
	return len(s.words)
}

func (s Solution) Repr() string {
	return strings.Join(s.words, " ")
}

func (s Solution) DebugString() string {
	return fmt.Sprintf("Solution{len: %d, words: %v}", len(s.words), s.words)
}

// SolutionSet is an append-only collection of solutions in discovery
// order. An empty set is a valid outcome, meaning no chain exists under
// the configured bounds.
type SolutionSet struct {
	solutions []Solution
}

// Add appends a solution.
func (s *SolutionSet) Add(solution Solution) {
	s.solutions = append(s.solutions, solution)
}

// Len returns the number of solutions discovered.
func (s *SolutionSet) Len() int {
	return len(s.solutions)
}

// All iterates solutions with their zero-based discovery index.
func (s *SolutionSet) All() iter.Seq2[int, Solution] {
	return func(yield func(int, Solution) bool) {
		for i, solution := range s.solutions {
			if !yield(i, solution) {
				return
			}
		}
	}
}
