package rest

import (
	"time"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// RuleResponse is the JSON form of a stored rule.
type RuleResponse struct {
	ID           string     `json:"id"`
	ErrorPattern string     `json:"error_pattern"`
	Correction   string     `json:"correction"`
	ErrorType    string     `json:"error_type"`
	Explanation  string     `json:"explanation"`
	ExerciseID   string     `json:"exercise_id"`
	Language     string     `json:"language"`
	Level        string     `json:"level"`
	AddedAt      *time.Time `json:"added_at,omitempty"`
}

// CorrectionResponse is one matched rule in an analysis.
type CorrectionResponse struct {
	ErrorPattern string `json:"error_pattern"`
	Correction   string `json:"correction"`
	ErrorType    string `json:"error_type"`
	Explanation  string `json:"explanation"`
	ExerciseID   string `json:"exercise_id"`
}

// AnalysisResponse is the JSON form of an analysis result.
type AnalysisResponse struct {
	Success            bool                 `json:"success"`
	Timestamp          time.Time            `json:"timestamp"`
	StudentID          string               `json:"student_id"`
	OriginalText       string               `json:"original_text"`
	Corrections        []CorrectionResponse `json:"corrections"`
	SuggestedExercises []string             `json:"suggested_exercises"`
	Message            string               `json:"message"`
}

// DecisionResponse echoes the score with its classification.
type DecisionResponse struct {
	Score    float64 `json:"score"`
	Decision string  `json:"decision"`
}

// ToRuleResponse converts a domain rule for output.
func ToRuleResponse(r domain.Rule) RuleResponse {
	return RuleResponse{
		ID:           r.ID.String(),
		ErrorPattern: r.ErrorPattern,
		Correction:   r.Correction,
		ErrorType:    r.ErrorType.String(),
		Explanation:  r.Explanation,
		ExerciseID:   r.ExerciseID,
		Language:     r.Language,
		Level:        r.Level,
		AddedAt:      r.AddedAt,
	}
}

// ToRuleResponses converts a rule list, never returning nil.
func ToRuleResponses(rules []domain.Rule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, ToRuleResponse(r))
	}
	return out
}

// ToAnalysisResponse converts an analysis result for output.
func ToAnalysisResponse(res domain.AnalysisResult) AnalysisResponse {
	corrections := make([]CorrectionResponse, 0, len(res.Corrections))
	for _, c := range res.Corrections {
		corrections = append(corrections, CorrectionResponse{
			ErrorPattern: c.ErrorPattern,
			Correction:   c.Correction,
			ErrorType:    c.ErrorType.String(),
			Explanation:  c.Explanation,
			ExerciseID:   c.ExerciseID,
		})
	}

	exercises := res.SuggestedExercises
	if exercises == nil {
		exercises = []string{}
	}

	return AnalysisResponse{
		Success:            res.Success,
		Timestamp:          res.Timestamp,
		StudentID:          res.StudentID,
		OriginalText:       res.OriginalText,
		Corrections:        corrections,
		SuggestedExercises: exercises,
		Message:            res.Message,
	}
}

// ToDecisionResponse pairs a score with its decision.
func ToDecisionResponse(score float64, d domain.Decision) DecisionResponse {
	return DecisionResponse{Score: score, Decision: d.String()}
}
