package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/finwell/score-service/internal/config"
	"github.com/finwell/score-service/internal/delivery/httpd"
	appmw "github.com/finwell/score-service/internal/middleware"
	"github.com/finwell/score-service/internal/repository"
	"github.com/finwell/score-service/internal/service"
	"github.com/finwell/score-service/internal/service/integration"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type App struct {
	server         *http.Server
	logger         zerolog.Logger
	config         *config.Config
	db             *sql.DB
	eventPublisher integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	rubricRepo, err := newRubricRepository(cfg, log, db)
	if err != nil {
		return nil, err
	}

	feedbackClient := integration.NewOpenAIClient(
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.Temperature,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Timeout,
		log,
	)

	var webhookClient integration.WebhookClient
	if cfg.Notifier.WebhookURL != "" {
		webhookClient = integration.NewWebhookClient(cfg.Notifier.WebhookURL, cfg.Notifier.Timeout, log)
	}

	var eventPublisher integration.EventPublisher
	if cfg.RabbitMQ.Enabled {
		eventPublisher, err = integration.NewRabbitMQClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			cfg.RabbitMQ.RoutingKey,
			cfg.RabbitMQ.QueueName,
			log,
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create RabbitMQ client")
			// Event delivery is best-effort; keep serving without it.
			eventPublisher = nil
		}
	}

	scoreService := service.NewScoreService(
		rubricRepo,
		feedbackClient,
		webhookClient,
		eventPublisher,
		cfg.Notifier.Timeout,
		log,
	)

	handler := httpd.NewHandler(scoreService, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appmw.RequestLogger(log))
	router.Use(appmw.Recovery(log))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Use(appmw.NewCORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
		cfg.CORS.ExposedHeaders,
		cfg.CORS.AllowCredentials,
		cfg.CORS.MaxAge,
	))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:         server,
		logger:         log,
		config:         cfg,
		db:             db,
		eventPublisher: eventPublisher,
	}, nil
}

func newRubricRepository(cfg *config.Config, log zerolog.Logger, db *sql.DB) (repository.RubricRepository, error) {
	var (
		repo repository.RubricRepository
		err  error
	)

	switch cfg.Rubric.Source {
	case "file":
		repo = repository.NewFileRubricRepository(cfg.Rubric.Path, log)
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("rubric source is postgres but no database connection was provided")
		}
		repo = repository.NewPostgresRubricRepository(db, log)
	case "minio":
		repo, err = repository.NewMinioRubricRepository(
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
			cfg.Rubric.Bucket,
			cfg.Rubric.Object,
			log,
		)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown rubric source: %s", cfg.Rubric.Source)
	}

	return repository.NewCachedRubricRepository(repo), nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting score service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down score service...")

	if a.eventPublisher != nil {
		if err := a.eventPublisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
