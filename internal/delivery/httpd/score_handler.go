package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finwell/score-service/internal/models"
	"github.com/finwell/score-service/internal/service"
)

func (h *Handler) ScoreSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	response, err := h.scoreService.ScoreSubmission(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	// Client faults are not server errors and are not logged as such.
	if errors.Is(err, service.ErrInvalidSubmission) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Error().Err(err).Msg("Failed to score submission")
	writeError(w, http.StatusInternalServerError, err.Error())
}
