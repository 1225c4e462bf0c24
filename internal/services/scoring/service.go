package scoring

import (
	"github.com/mcoot/wordhunt/internal/model"
)

// pointValues maps word length to points; lengths past the end use the last entry
var pointValues = [...]int{0, 0, 0, 100, 400, 800, 1200, 1600, 2000, 2400, 2800}

// PointValue returns the points a word of the given length is worth
func PointValue(length int) int {
	if length < 0 {
		return 0
	}
	if length >= len(pointValues) {
		return pointValues[len(pointValues)-1]
	}
	return pointValues[length]
}

// Service provides scoring for found and possible words
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ScoreSolutions scores every solution in the set, keeping the set's order
func (s *Service) ScoreSolutions(set *model.SolutionSet) model.Score {
	result := model.Score{
		Words: []model.ScoredWord{},
	}
	if set == nil {
		return result
	}

	for sol := range set.All() {
		points := PointValue(sol.Length)
		result.Words = append(result.Words, model.ScoredWord{
			Solution: sol,
			Points:   points,
		})
		result.TotalScore += points
	}
	return result
}

// MaxPoints returns the best achievable score: the sum over every word on the board
func (s *Service) MaxPoints(possible *model.SolutionSet) int {
	return s.ScoreSolutions(possible).TotalScore
}

// Result builds the summary of a finished game
func (s *Service) Result(game *model.Game) *model.GameResult {
	return &model.GameResult{
		GameID:    game.ID,
		Found:     s.ScoreSolutions(game.Found),
		Possible:  s.ScoreSolutions(game.Possible),
		MaxPoints: s.MaxPoints(game.Possible),
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreSolutions(set *model.SolutionSet) model.Score
	MaxPoints(possible *model.SolutionSet) int
	Result(game *model.Game) *model.GameResult
}

var _ ServiceInterface = (*Service)(nil)
