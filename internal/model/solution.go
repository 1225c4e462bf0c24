package model

import (
	"cmp"
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Solution is a word found on the grid together with the path that spells it
type Solution struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
	Path   []Tile `json:"path"`
}

// NewSolution freezes a path into a Solution. The path is deep-copied so the
// caller may keep mutating it.
func NewSolution(p *Path) Solution {
	return Solution{
		Word:   p.Word(),
		Length: p.Len(),
		Path:   p.Tiles(),
	}
}

// Positions returns the coordinates along the solution's path
func (s Solution) Positions() []Position {
	out := make([]Position, len(s.Path))
	for i, t := range s.Path {
		out[i] = t.Position()
	}
	return out
}

// CompareSolutions orders longer words first, then alphabetically
func CompareSolutions(a, b Solution) int {
	if a.Length != b.Length {
		return cmp.Compare(b.Length, a.Length)
	}
	return cmp.Compare(a.Word, b.Word)
}

// SolutionSet is an ordered collection of solutions with at most one entry per word
type SolutionSet struct {
	items []Solution
	words map[string]struct{}
}

// NewSolutionSet creates an empty SolutionSet
func NewSolutionSet() *SolutionSet {
	return &SolutionSet{
		words: make(map[string]struct{}),
	}
}

// Insert adds a solution in order. It returns false and leaves the set unchanged
// if a solution with the same word is already present.
func (s *SolutionSet) Insert(sol Solution) bool {
	if s.words == nil {
		s.words = make(map[string]struct{})
	}
	if _, ok := s.words[sol.Word]; ok {
		return false
	}
	idx, _ := slices.BinarySearchFunc(s.items, sol, CompareSolutions)
	s.items = slices.Insert(s.items, idx, sol)
	s.words[sol.Word] = struct{}{}
	return true
}

// Contains reports whether word is in the set
func (s *SolutionSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Get returns the solution for word
func (s *SolutionSet) Get(word string) (Solution, bool) {
	if !s.Contains(word) {
		return Solution{}, false
	}
	for _, sol := range s.items {
		if sol.Word == word {
			return sol, true
		}
	}
	return Solution{}, false
}

// Len returns the number of solutions
func (s *SolutionSet) Len() int {
	return len(s.items)
}

// All yields the solutions in order. The sequence can be ranged over repeatedly.
func (s *SolutionSet) All() iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		for _, sol := range s.items {
			if !yield(sol) {
				return
			}
		}
	}
}

// Words returns the words in order
func (s *SolutionSet) Words() []string {
	out := make([]string, len(s.items))
	for i, sol := range s.items {
		out[i] = sol.Word
	}
	return out
}

// Clone returns an independent copy of the set. Solutions are never modified
// once inserted, so their paths are shared.
func (s *SolutionSet) Clone() *SolutionSet {
	if s == nil {
		return nil
	}
	c := &SolutionSet{
		items: slices.Clone(s.items),
		words: maps.Clone(s.words),
	}
	if c.words == nil {
		c.words = make(map[string]struct{})
	}
	return c
}

// Clear drops every solution
func (s *SolutionSet) Clear() {
	s.items = nil
	s.words = make(map[string]struct{})
}

// MarshalJSON encodes the set as an ordered array
func (s *SolutionSet) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON decodes an array, re-applying ordering and deduplication
func (s *SolutionSet) UnmarshalJSON(data []byte) error {
	var items []Solution
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	s.Clear()
	for _, sol := range items {
		s.Insert(sol)
	}
	return nil
}
