package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/finwell/score-service/internal/models"
)

func testRubric() models.Rubric {
	return models.Rubric{
		{
			Responses: []models.ResponseOption{
				{Response: "never", Points: 0},
				{Response: "sometimes", Points: 5},
				{Response: "always", Points: 10},
			},
		},
		{
			Responses: []models.ResponseOption{
				{Response: "never", Points: 0},
				{Response: "sometimes", Points: 5},
				{Response: "always", Points: 10},
			},
		},
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		answers        []string
		wantTotal      float64
		wantPercentile int
		wantUnmatched  int
	}{
		{
			name:           "full match",
			answers:        []string{"always", "sometimes"},
			wantTotal:      15,
			wantPercentile: 75,
		},
		{
			name:           "perfect score",
			answers:        []string{"always", "always"},
			wantTotal:      20,
			wantPercentile: 100,
		},
		{
			name:           "fewer answers than questions",
			answers:        []string{"always"},
			wantTotal:      10,
			wantPercentile: 50,
		},
		{
			name:           "more answers than questions",
			answers:        []string{"always", "always", "always", "always"},
			wantTotal:      20,
			wantPercentile: 100,
		},
		{
			name:           "unrecognized answer contributes zero",
			answers:        []string{"ALWAYS", "sometimes"},
			wantTotal:      5,
			wantPercentile: 25,
			wantUnmatched:  1,
		},
		{
			name:           "empty answers",
			answers:        []string{},
			wantTotal:      0,
			wantPercentile: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(testRubric(), tt.answers)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}

			if result.TotalScore != tt.wantTotal {
				t.Errorf("TotalScore = %v, want %v", result.TotalScore, tt.wantTotal)
			}
			if result.MaxScore != 20 {
				t.Errorf("MaxScore = %v, want 20", result.MaxScore)
			}
			if result.Percentile != tt.wantPercentile {
				t.Errorf("Percentile = %d, want %d", result.Percentile, tt.wantPercentile)
			}
			if result.Unmatched != tt.wantUnmatched {
				t.Errorf("Unmatched = %d, want %d", result.Unmatched, tt.wantUnmatched)
			}
		})
	}
}

func TestScoreRounding(t *testing.T) {
	rubric := models.Rubric{
		{
			Responses: []models.ResponseOption{
				{Response: "a", Points: 1},
				{Response: "b", Points: 3},
			},
		},
	}

	result, err := Score(rubric, []string{"a"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	// 1/3 rounds to 33, not 34.
	if result.Percentile != 33 {
		t.Errorf("Percentile = %d, want 33", result.Percentile)
	}
}

func TestScoreDegenerateRubric(t *testing.T) {
	rubric := models.Rubric{
		{
			Responses: []models.ResponseOption{
				{Response: "a", Points: 0},
				{Response: "b", Points: 0},
			},
		},
	}

	_, err := Score(rubric, []string{"a"})
	if !errors.Is(err, ErrDegenerateRubric) {
		t.Fatalf("Score() error = %v, want ErrDegenerateRubric", err)
	}
}

func TestScoreIdempotent(t *testing.T) {
	rubric := testRubric()
	answers := []string{"always", "unknown"}

	first, err := Score(rubric, answers)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	second, err := Score(rubric, answers)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Score() is not deterministic: %+v != %+v", first, second)
	}
}

func TestMaxScoreIndependentOfAnswers(t *testing.T) {
	rubric := testRubric()

	for _, answers := range [][]string{nil, {"always"}, {"never", "never"}, {"x", "y", "z"}} {
		result, err := Score(rubric, answers)
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if result.MaxScore != 20 {
			t.Errorf("MaxScore = %v for answers %v, want 20", result.MaxScore, answers)
		}
	}
}
