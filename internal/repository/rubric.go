package repository

import (
	"context"
	"errors"

	"github.com/finwell/score-service/internal/models"
)

// ErrRubricUnavailable marks a missing, unreadable or structurally invalid
// rubric document. It is a configuration fault and must surface as an
// internal error, never as an empty rubric.
var ErrRubricUnavailable = errors.New("rubric unavailable")

// RubricRepository loads the scoring rubric from its backing store.
// The document is static at runtime, so implementations may be wrapped
// with the read-once cache decorator.
type RubricRepository interface {
	Load(ctx context.Context) (models.Rubric, error)
}
