// Package decision classifies an evaluation score into a pedagogical
// next step.
package decision

import "github.com/heartmarshall/edusphere-backend/internal/domain"

const (
	AdvanceThreshold     = 80.0
	ConsolidateThreshold = 50.0
)

// Decide maps a score to a decision. Every real number is classified:
// scores outside 0-100 fall into the nearest band.
func Decide(score float64) domain.Decision {
	switch {
	case score >= AdvanceThreshold:
		return domain.DecisionAdvance
	case score >= ConsolidateThreshold:
		return domain.DecisionConsolidate
	default:
		return domain.DecisionChangeModality
	}
}
