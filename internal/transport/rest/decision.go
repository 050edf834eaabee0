package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// DecisionHandler serves the score classification endpoint.
type DecisionHandler struct {
	decide func(score float64) domain.Decision
	log    *slog.Logger
}

// NewDecisionHandler creates a DecisionHandler.
func NewDecisionHandler(decide func(score float64) domain.Decision, logger *slog.Logger) *DecisionHandler {
	return &DecisionHandler{decide: decide, log: logger.With("handler", "decision")}
}

type decisionRequest struct {
	Score float64 `json:"score"`
}

// Decide handles POST /decision. A missing score counts as 0.
func (h *DecisionHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, ToDecisionResponse(req.Score, h.decide(req.Score)))
}
