package rule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/edusphere-backend/internal/config"
	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

type ruleRepo interface {
	List(ctx context.Context, language string) []domain.Rule
	Append(ctx context.Context, rule domain.Rule) domain.Rule
	Count(ctx context.Context) int
}

// Service owns the rule knowledge base: listing and runtime registration.
type Service struct {
	rules ruleRepo
	cfg   config.RulesConfig
	log   *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService creates a new Rule service.
func NewService(log *slog.Logger, rules ruleRepo, cfg config.RulesConfig) *Service {
	return &Service{
		rules: rules,
		cfg:   cfg,
		log:   log.With("service", "rule"),
		now:   time.Now,
		newID: uuid.New,
	}
}
