package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
	"github.com/heartmarshall/edusphere-backend/internal/service/analysis"
)

// defaultQueryText is analysed when GET /analyser carries no text.
const defaultQueryText = "test"

type analysisService interface {
	Analyze(ctx context.Context, input analysis.AnalyzeInput) domain.AnalysisResult
}

// AnalysisHandler serves the text analysis endpoints.
type AnalysisHandler struct {
	svc           analysisService
	maxTextLength int
	log           *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler. A maxTextLength of zero
// disables the length check.
func NewAnalysisHandler(svc analysisService, maxTextLength int, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, maxTextLength: maxTextLength, log: logger.With("handler", "analysis")}
}

type analysisRequest struct {
	Text      string  `json:"text"`
	StudentID string  `json:"student_id" validate:"max=128"`
	Language  *string `json:"language" validate:"omitnil,max=16"`
}

// Analyze handles POST /analyser.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.analyze(w, r, req)
}

// AnalyzeQuery handles GET /analyser?texte=&langue=&student_id=.
// An absent langue selects the default language; an empty one disables
// the language filter.
func (h *AnalysisHandler) AnalyzeQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := analysisRequest{
		Text:      defaultQueryText,
		StudentID: q.Get("student_id"),
	}
	if q.Has("texte") {
		req.Text = q.Get("texte")
	}
	if q.Has("langue") {
		lang := q.Get("langue")
		req.Language = &lang
	}

	h.analyze(w, r, req)
}

func (h *AnalysisHandler) analyze(w http.ResponseWriter, r *http.Request, req analysisRequest) {
	if err := validateRequest(req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if h.maxTextLength > 0 && utf8.RuneCountInString(req.Text) > h.maxTextLength {
		handleError(h.log, w, r, domain.NewValidationError("text", fmt.Sprintf("max %d characters", h.maxTextLength)))
		return
	}

	result := h.svc.Analyze(r.Context(), analysis.AnalyzeInput{
		Text:      req.Text,
		StudentID: req.StudentID,
		Language:  req.Language,
	})

	writeJSON(w, http.StatusOK, ToAnalysisResponse(result))
}
