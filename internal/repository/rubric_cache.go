package repository

import (
	"context"
	"sync"

	"github.com/finwell/score-service/internal/models"
)

type cachedRubricRepository struct {
	source RubricRepository

	mu     sync.RWMutex
	rubric models.Rubric
}

// NewCachedRubricRepository keeps the first successfully loaded rubric in
// memory for the lifetime of the process. The rubric is written at most once
// and is safe for concurrent reads; load failures are not cached, so a broken
// store is retried on the next request.
func NewCachedRubricRepository(source RubricRepository) RubricRepository {
	return &cachedRubricRepository{source: source}
}

func (r *cachedRubricRepository) Load(ctx context.Context) (models.Rubric, error) {
	r.mu.RLock()
	rubric := r.rubric
	r.mu.RUnlock()

	if rubric != nil {
		return rubric, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rubric != nil {
		return r.rubric, nil
	}

	rubric, err := r.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	r.rubric = rubric
	return rubric, nil
}
