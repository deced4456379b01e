package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finwell/score-service/internal/models"
	"github.com/rs/zerolog"
)

type postgresRubricRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewPostgresRubricRepository reads the rubric from the rubric_questions and
// rubric_responses tables, ordered by question position.
func NewPostgresRubricRepository(db *sql.DB, logger zerolog.Logger) RubricRepository {
	return &postgresRubricRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postgresRubricRepository) Load(ctx context.Context) (models.Rubric, error) {
	query := `
		SELECT q.position, q.question, res.response, res.points
		FROM rubric_questions q
		JOIN rubric_responses res ON res.question_id = q.id
		ORDER BY q.position, res.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query rubric: %v", ErrRubricUnavailable, err)
	}
	defer rows.Close()

	var rubric models.Rubric
	lastPosition := -1

	for rows.Next() {
		var (
			position int
			question string
			option   models.ResponseOption
		)

		if err := rows.Scan(&position, &question, &option.Response, &option.Points); err != nil {
			return nil, fmt.Errorf("%w: failed to scan rubric row: %v", ErrRubricUnavailable, err)
		}

		if position != lastPosition {
			// Positions must be contiguous so answers line up by index.
			if position != len(rubric) {
				return nil, fmt.Errorf("%w: rubric positions are not contiguous at %d", ErrRubricUnavailable, position)
			}
			rubric = append(rubric, models.RubricQuestion{Question: question})
			lastPosition = position
		}

		q := &rubric[len(rubric)-1]
		q.Responses = append(q.Responses, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate rubric rows: %v", ErrRubricUnavailable, err)
	}

	if err := rubric.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRubricUnavailable, err)
	}

	r.logger.Debug().
		Int("questions", len(rubric)).
		Msg("Rubric loaded from postgres")

	return rubric, nil
}
