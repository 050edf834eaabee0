package rule

import (
	"context"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// ListRules returns the rules in insertion order. An empty language returns
// every rule; otherwise only rules whose language equals it exactly.
func (s *Service) ListRules(ctx context.Context, language string) []domain.Rule {
	return s.rules.List(ctx, language)
}

// Count returns the number of rules currently stored.
func (s *Service) Count(ctx context.Context) int {
	return s.rules.Count(ctx)
}
