package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLanguage  = "fr"
	DefaultLevel     = "all"
	DefaultStudentID = "anonymous"
)

// Rule maps a known error pattern to its pedagogical remediation.
// Rules are never edited once stored.
type Rule struct {
	ID           uuid.UUID
	ErrorPattern string
	Correction   string
	ErrorType    ErrorType
	Explanation  string
	ExerciseID   string
	Language     string
	Level        string
	// AddedAt is nil for seed rules and set for rules registered at runtime.
	AddedAt *time.Time
}

// WithDefaults returns a copy of r with tags normalized and every empty
// optional field filled. Pattern and correction are kept verbatim.
func (r Rule) WithDefaults() Rule {
	r.ErrorType = ErrorType(NormalizeTag(string(r.ErrorType)))
	if r.ErrorType == "" {
		r.ErrorType = ErrorTypeCustom
	}
	r.Language = NormalizeTag(r.Language)
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	r.Level = strings.TrimSpace(r.Level)
	if r.Level == "" {
		r.Level = DefaultLevel
	}
	r.Explanation = strings.TrimSpace(r.Explanation)
	if r.Explanation == "" {
		r.Explanation = DefaultExplanation(r.ErrorPattern, r.Correction)
	}
	r.ExerciseID = strings.TrimSpace(r.ExerciseID)
	if r.ExerciseID == "" {
		r.ExerciseID = DefaultExerciseID(r.ErrorType)
	}
	return r
}

// IsSeed reports whether the rule was part of the seed set.
func (r Rule) IsSeed() bool {
	return r.AddedAt == nil
}

// ToCorrection returns the subset of the rule reported to a student.
func (r Rule) ToCorrection() Correction {
	return Correction{
		ErrorPattern: r.ErrorPattern,
		Correction:   r.Correction,
		ErrorType:    r.ErrorType,
		Explanation:  r.Explanation,
		ExerciseID:   r.ExerciseID,
	}
}

// Correction is a matched rule as reported in an analysis.
type Correction struct {
	ErrorPattern string
	Correction   string
	ErrorType    ErrorType
	Explanation  string
	ExerciseID   string
}

// AnalysisResult is the outcome of matching one student text.
type AnalysisResult struct {
	Success            bool
	Timestamp          time.Time
	StudentID          string
	OriginalText       string
	Corrections        []Correction
	SuggestedExercises []string
	Message            string
}

// HasErrors reports whether at least one rule matched.
func (r AnalysisResult) HasErrors() bool {
	return len(r.Corrections) > 0
}

// DefaultExplanation builds the explanation used when a rule is registered
// without one.
func DefaultExplanation(pattern, correction string) string {
	return fmt.Sprintf("On écrit « %s » et non « %s ».", correction, pattern)
}

// DefaultExerciseID builds the exercise reference used when a rule is
// registered without one.
func DefaultExerciseID(errorType ErrorType) string {
	return fmt.Sprintf("exercices/%s/general", errorType)
}
