package rule

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// AddRuleInput holds the parameters for registering a rule.
// Empty optional fields take their defaults.
type AddRuleInput struct {
	ErrorPattern string
	Correction   string
	ErrorType    string
	Explanation  string
	ExerciseID   string
	Language     string
	Level        string
}

// Validate checks all fields and collects all errors. Failures are reported
// as *domain.InvalidRuleError.
func (i AddRuleInput) Validate(maxPatternLength int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ErrorPattern) == "" {
		errs = append(errs, domain.FieldError{Field: "error_pattern", Message: "required"})
	} else if maxPatternLength > 0 && utf8.RuneCountInString(i.ErrorPattern) > maxPatternLength {
		errs = append(errs, domain.FieldError{
			Field:   "error_pattern",
			Message: fmt.Sprintf("max %d characters", maxPatternLength),
		})
	}
	if strings.TrimSpace(i.Correction) == "" {
		errs = append(errs, domain.FieldError{Field: "correction", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.InvalidRuleError{Errors: errs}
	}
	return nil
}
