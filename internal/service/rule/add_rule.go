package rule

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// AddRule validates input, fills defaults, stamps the registration time and
// appends the rule at the end of the collection. Nothing is stored when
// validation fails.
func (s *Service) AddRule(ctx context.Context, input AddRuleInput) (domain.Rule, error) {
	if err := input.Validate(s.cfg.MaxPatternLength); err != nil {
		return domain.Rule{}, err
	}

	addedAt := s.now()
	r := domain.Rule{
		ID:           s.newID(),
		ErrorPattern: input.ErrorPattern,
		Correction:   input.Correction,
		ErrorType:    domain.ErrorType(input.ErrorType),
		Explanation:  input.Explanation,
		ExerciseID:   input.ExerciseID,
		Language:     input.Language,
		Level:        input.Level,
		AddedAt:      &addedAt,
	}.WithDefaults()

	stored := s.rules.Append(ctx, r)

	s.log.InfoContext(ctx, "rule added",
		slog.String("rule_id", stored.ID.String()),
		slog.String("error_type", stored.ErrorType.String()),
		slog.String("language", stored.Language),
	)

	return stored, nil
}
