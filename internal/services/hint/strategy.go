package hint

import (
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/model"
)

// Strategy names
const (
	StrategyRandom   = "random"
	StrategyLongest  = "longest"
	StrategyShortest = "shortest"
)

// Strategy picks which unfound word to hint at. Candidates are never empty and
// arrive ordered longest first, then alphabetically.
type Strategy interface {
	Choose(candidates []model.Solution) model.Solution
}

// RandomStrategy picks any unfound word
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Choose returns a random candidate
func (s *RandomStrategy) Choose(candidates []model.Solution) model.Solution {
	return candidates[s.random.Intn(len(candidates))]
}

// LongestStrategy points at the highest scoring word left
type LongestStrategy struct{}

// Choose returns the first candidate
func (LongestStrategy) Choose(candidates []model.Solution) model.Solution {
	return candidates[0]
}

// ShortestStrategy points at the easiest word left
type ShortestStrategy struct{}

// Choose returns the alphabetically first of the shortest candidates
func (ShortestStrategy) Choose(candidates []model.Solution) model.Solution {
	best := candidates[len(candidates)-1]
	for i := len(candidates) - 2; i >= 0 && candidates[i].Length == best.Length; i-- {
		best = candidates[i]
	}
	return best
}

// DefaultStrategies returns every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		StrategyRandom:   NewRandomStrategy(rnd),
		StrategyLongest:  LongestStrategy{},
		StrategyShortest: ShortestStrategy{},
	}
}
