package httpd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/finwell/score-service/internal/models"
	"github.com/finwell/score-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	scoreService service.ScoreService
	logger       zerolog.Logger
}

func NewHandler(scoreService service.ScoreService, logger zerolog.Logger) *Handler {
	return &Handler{
		scoreService: scoreService,
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	// The scoring endpoint accepts POST only; everything else gets the
	// structured 405 body. Preflight OPTIONS is answered by the CORS
	// middleware before routing. Set before the routes so mounted
	// subrouters inherit it.
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "")
	})

	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Post("/score", h.ScoreSurvey)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "score-service",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, details string) {
	writeJSON(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Details: details,
	})
}
