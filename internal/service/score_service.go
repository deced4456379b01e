package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finwell/score-service/internal/models"
	"github.com/finwell/score-service/internal/repository"
	"github.com/finwell/score-service/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidSubmission marks a client-side fault: a missing name or a missing
// answer list.
var ErrInvalidSubmission = errors.New("invalid submission")

// ErrFeedbackGeneration marks a failed or unusable response from the
// text-generation service. The computed score is discarded in that case,
// since the endpoint promises percentile and feedback together.
var ErrFeedbackGeneration = errors.New("feedback generation failed")

type ScoreService interface {
	ScoreSubmission(ctx context.Context, req *models.ScoreRequest) (*models.ScoreResponse, error)
}

type scoreService struct {
	rubricRepo     repository.RubricRepository
	feedbackClient integration.FeedbackClient
	webhookClient  integration.WebhookClient
	eventPublisher integration.EventPublisher
	notifyTimeout  time.Duration
	logger         zerolog.Logger
}

func NewScoreService(
	rubricRepo repository.RubricRepository,
	feedbackClient integration.FeedbackClient,
	webhookClient integration.WebhookClient,
	eventPublisher integration.EventPublisher,
	notifyTimeout time.Duration,
	logger zerolog.Logger,
) ScoreService {
	if notifyTimeout <= 0 {
		notifyTimeout = 10 * time.Second
	}

	return &scoreService{
		rubricRepo:     rubricRepo,
		feedbackClient: feedbackClient,
		webhookClient:  webhookClient,
		eventPublisher: eventPublisher,
		notifyTimeout:  notifyTimeout,
		logger:         logger,
	}
}

func (s *scoreService) ScoreSubmission(ctx context.Context, req *models.ScoreRequest) (*models.ScoreResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	}
	if req.Answers == nil {
		return nil, fmt.Errorf("%w: answers are required", ErrInvalidSubmission)
	}

	rubric, err := s.rubricRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rubric: %w", err)
	}

	result, err := Score(rubric, req.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to score submission: %w", err)
	}

	submissionID := uuid.New().String()

	if result.Unmatched > 0 {
		s.logger.Debug().
			Str("submission_id", submissionID).
			Int("unmatched", result.Unmatched).
			Msg("Submission contains answers with no matching response option")
	}

	messages := ComposeFeedbackPrompt(req.Name, result.Percentile, req.Answers)

	feedback, err := s.feedbackClient.GenerateFeedback(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedbackGeneration, err)
	}

	s.logger.Info().
		Str("submission_id", submissionID).
		Float64("total_score", result.TotalScore).
		Float64("max_score", result.MaxScore).
		Int("percentile", result.Percentile).
		Msg("Submission scored")

	// Analytics delivery is best-effort and must never block or fail the
	// response. The goroutine gets its own context so it survives the
	// request's lifetime, bounded by the notifier timeout.
	go s.dispatchNotifications(submissionID, req, result.Percentile)

	return &models.ScoreResponse{
		Percentile: result.Percentile,
		Feedback:   feedback,
	}, nil
}

func (s *scoreService) dispatchNotifications(submissionID string, req *models.ScoreRequest, percentile int) {
	if s.webhookClient == nil && s.eventPublisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	now := time.Now()

	if s.webhookClient != nil {
		payload := models.NewNotificationPayload(req.Name, req.Email, percentile, req.Answers, now)
		if err := s.webhookClient.Send(ctx, payload); err != nil {
			s.logger.Error().
				Err(err).
				Str("submission_id", submissionID).
				Msg("Failed to deliver webhook notification")
		}
	}

	if s.eventPublisher != nil {
		event := &models.SubmissionScoredEvent{
			SubmissionID: submissionID,
			Name:         req.Name,
			Email:        req.Email,
			Percentile:   percentile,
			Timestamp:    now.Unix(),
		}

		if err := s.eventPublisher.PublishSubmissionScored(ctx, event); err != nil {
			s.logger.Error().
				Err(err).
				Str("submission_id", submissionID).
				Msg("Failed to publish submission scored event")
		}
	}
}
