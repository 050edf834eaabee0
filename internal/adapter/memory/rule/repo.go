// Package rule implements the rule repository in process memory.
// The collection is append-only and lives as long as the process.
package rule

import (
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// Repo holds the ordered rule collection. Appends take the write lock;
// reads share the read lock and never block each other.
type Repo struct {
	mu          sync.RWMutex
	rules       []domain.Rule
	seedVersion int
}

// New creates a repository pre-populated with the seed rules.
func New(seed Seed) *Repo {
	return &Repo{
		rules:       slices.Clone(seed.Rules),
		seedVersion: seed.Version,
	}
}

// List returns rules in insertion order. A non-empty language keeps only
// rules whose language equals it exactly. The returned slice is a copy.
func (r *Repo) List(_ context.Context, language string) []domain.Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if language == "" {
		return slices.Clone(r.rules)
	}

	out := make([]domain.Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.Language == language {
			out = append(out, rule)
		}
	}
	return out
}

// Append stores rule at the end of the collection and returns it.
func (r *Repo) Append(_ context.Context, rule domain.Rule) domain.Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule)
	return rule
}

// Count returns the number of stored rules.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// SeedVersion returns the version of the seed the repository started from.
func (r *Repo) SeedVersion() int {
	return r.seedVersion
}
