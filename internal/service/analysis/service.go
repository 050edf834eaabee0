package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

type ruleLister interface {
	List(ctx context.Context, language string) []domain.Rule
}

// Service matches student texts against the rule store.
type Service struct {
	rules ruleLister
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Analysis service.
func NewService(log *slog.Logger, rules ruleLister) *Service {
	return &Service{
		rules: rules,
		log:   log.With("service", "analysis"),
		now:   time.Now,
	}
}
