package service

import (
	"errors"
	"math"

	"github.com/finwell/score-service/internal/models"
)

// ErrDegenerateRubric is returned when the rubric's maximum score is zero.
// A percentile cannot be computed against such a rubric, so it is treated as
// a configuration fault rather than scored as 0%.
var ErrDegenerateRubric = errors.New("rubric has no scorable questions")

// Score tallies the submitted answers against the rubric. It is a pure
// function: answers are matched positionally by exact string comparison, an
// answer with no matching response option contributes zero points, and
// answers beyond the rubric length are ignored.
func Score(rubric models.Rubric, answers []string) (models.ScoreResult, error) {
	result := models.ScoreResult{
		MaxScore: rubric.MaxScore(),
	}

	if result.MaxScore <= 0 {
		return models.ScoreResult{}, ErrDegenerateRubric
	}

	for i, answer := range answers {
		if i >= len(rubric) {
			break
		}

		matched := false
		for _, option := range rubric[i].Responses {
			if option.Response == answer {
				result.TotalScore += option.Points
				matched = true
				break
			}
		}

		if !matched {
			result.Unmatched++
		}
	}

	result.Percentile = int(math.Round(result.TotalScore / result.MaxScore * 100))

	return result, nil
}
