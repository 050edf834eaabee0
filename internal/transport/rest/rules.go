package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
	"github.com/heartmarshall/edusphere-backend/internal/service/rule"
)

type ruleService interface {
	ListRules(ctx context.Context, language string) []domain.Rule
	AddRule(ctx context.Context, input rule.AddRuleInput) (domain.Rule, error)
}

// RuleHandler serves the rule knowledge base endpoints.
type RuleHandler struct {
	svc ruleService
	log *slog.Logger
}

// NewRuleHandler creates a RuleHandler.
func NewRuleHandler(svc ruleService, logger *slog.Logger) *RuleHandler {
	return &RuleHandler{svc: svc, log: logger.With("handler", "rule")}
}

type addRuleRequest struct {
	ErrorPattern string `json:"error_pattern"`
	Correction   string `json:"correction"`
	ErrorType    string `json:"error_type" validate:"max=64"`
	Explanation  string `json:"explanation" validate:"max=1000"`
	ExerciseID   string `json:"exercise_id" validate:"max=256"`
	Language     string `json:"language" validate:"max=16"`
	Level        string `json:"level" validate:"max=64"`
}

type listRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
	Total int            `json:"total"`
}

// List handles GET /rules?language=. Without a language every rule is
// returned.
func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	rules := h.svc.ListRules(r.Context(), r.URL.Query().Get("language"))

	writeJSON(w, http.StatusOK, listRulesResponse{
		Rules: ToRuleResponses(rules),
		Total: len(rules),
	})
}

// Create handles POST /rules.
func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addRuleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stored, err := h.svc.AddRule(r.Context(), rule.AddRuleInput{
		ErrorPattern: req.ErrorPattern,
		Correction:   req.Correction,
		ErrorType:    req.ErrorType,
		Explanation:  req.Explanation,
		ExerciseID:   req.ExerciseID,
		Language:     req.Language,
		Level:        req.Level,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ToRuleResponse(stored))
}
