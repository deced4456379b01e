package models

import "fmt"

// ResponseOption is a single answer choice of a rubric question with the
// points it is worth.
type ResponseOption struct {
	Response string  `json:"response"`
	Points   float64 `json:"points"`
}

// RubricQuestion holds the scored response options for one survey question.
// Its position in the rubric matches the position of the answer it grades.
type RubricQuestion struct {
	Question  string           `json:"question,omitempty"`
	Responses []ResponseOption `json:"responses"`
}

// Rubric is the ordered list of survey questions. It is loaded once from a
// static document and never mutated afterwards.
type Rubric []RubricQuestion

// MaxPoints returns the highest points value among the question's responses.
func (q RubricQuestion) MaxPoints() float64 {
	if len(q.Responses) == 0 {
		return 0
	}

	max := q.Responses[0].Points
	for _, r := range q.Responses[1:] {
		if r.Points > max {
			max = r.Points
		}
	}
	return max
}

// MaxScore returns the rubric's own ceiling: the sum of each question's
// highest-scoring response. It does not depend on submitted answers.
func (r Rubric) MaxScore() float64 {
	var sum float64
	for _, q := range r {
		sum += q.MaxPoints()
	}
	return sum
}

// Validate checks the structural invariants of a loaded rubric.
func (r Rubric) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("rubric contains no questions")
	}

	for i, q := range r {
		if len(q.Responses) == 0 {
			return fmt.Errorf("question %d has no response options", i+1)
		}
	}

	return nil
}

// ScoreResult is the outcome of scoring one submission against the rubric.
type ScoreResult struct {
	TotalScore float64
	MaxScore   float64
	Percentile int
	// Unmatched counts answers that matched no response option for their
	// question. They contribute zero points and are a data-quality signal,
	// not an error.
	Unmatched int
}
