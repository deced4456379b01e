package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/finwell/score-service/internal/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

type minioRubricRepository struct {
	client *minio.Client
	bucket string
	object string
	logger zerolog.Logger
}

// NewMinioRubricRepository reads the rubric JSON document from an object
// storage bucket. The document is a versioned configuration artifact; the
// service only ever reads it.
func NewMinioRubricRepository(endpoint, accessKey, secretKey string, useSSL bool, bucket, object string, logger zerolog.Logger) (RubricRepository, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.Info().
		Str("endpoint", endpoint).
		Str("bucket", bucket).
		Str("object", object).
		Bool("ssl", useSSL).
		Msg("Connected to MinIO")

	return &minioRubricRepository{
		client: client,
		bucket: bucket,
		object: object,
		logger: logger,
	}, nil
}

func (r *minioRubricRepository) Load(ctx context.Context) (models.Rubric, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get %s/%s: %v", ErrRubricUnavailable, r.bucket, r.object, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s/%s: %v", ErrRubricUnavailable, r.bucket, r.object, err)
	}

	var rubric models.Rubric
	if err := json.Unmarshal(raw, &rubric); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s/%s: %v", ErrRubricUnavailable, r.bucket, r.object, err)
	}

	if err := rubric.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRubricUnavailable, err)
	}

	r.logger.Debug().
		Str("bucket", r.bucket).
		Str("object", r.object).
		Int("questions", len(rubric)).
		Msg("Rubric loaded from object storage")

	return rubric, nil
}
