package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

const noErrorsMessage = "Aucune erreur détectée. Bravo !"

// Analyze returns every rule whose pattern occurs in the case-folded text,
// in store order, with the exercise ids of the matches deduplicated.
// Analyze never fails: a text matching nothing yields an empty result.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) domain.AnalysisResult {
	folded := domain.FoldText(input.Text)
	rules := s.rules.List(ctx, input.language())

	corrections := make([]domain.Correction, 0)
	exercises := make([]string, 0)
	seen := make(map[string]struct{})

	for _, r := range rules {
		pattern := domain.FoldText(r.ErrorPattern)
		if pattern == "" || !strings.Contains(folded, pattern) {
			continue
		}
		corrections = append(corrections, r.ToCorrection())

		if r.ExerciseID == "" {
			continue
		}
		if _, ok := seen[r.ExerciseID]; ok {
			continue
		}
		seen[r.ExerciseID] = struct{}{}
		exercises = append(exercises, r.ExerciseID)
	}

	result := domain.AnalysisResult{
		Success:            true,
		Timestamp:          s.now(),
		StudentID:          input.studentID(),
		OriginalText:       input.Text,
		Corrections:        corrections,
		SuggestedExercises: exercises,
		Message:            resultMessage(len(corrections)),
	}

	s.log.DebugContext(ctx, "text analysed",
		slog.String("student_id", result.StudentID),
		slog.Int("rules_checked", len(rules)),
		slog.Int("matches", len(corrections)),
	)

	return result
}

func resultMessage(matches int) string {
	switch matches {
	case 0:
		return noErrorsMessage
	case 1:
		return "1 erreur détectée."
	default:
		return fmt.Sprintf("%d erreurs détectées.", matches)
	}
}
