package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/finwell/score-service/internal/models"
	"github.com/rs/zerolog"
)

type fileRubricRepository struct {
	path   string
	logger zerolog.Logger
}

// NewFileRubricRepository reads the rubric from a JSON document on disk.
func NewFileRubricRepository(path string, logger zerolog.Logger) RubricRepository {
	return &fileRubricRepository{
		path:   path,
		logger: logger,
	}
}

func (r *fileRubricRepository) Load(_ context.Context) (models.Rubric, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrRubricUnavailable, r.path, err)
	}

	var rubric models.Rubric
	if err := json.Unmarshal(raw, &rubric); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrRubricUnavailable, r.path, err)
	}

	if err := rubric.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRubricUnavailable, err)
	}

	r.logger.Debug().
		Str("path", r.path).
		Int("questions", len(rubric)).
		Msg("Rubric loaded from file")

	return rubric, nil
}
