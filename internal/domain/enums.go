package domain

// ErrorType categorises a rule. The set is open: rules registered at runtime
// may carry any non-empty tag.
type ErrorType string

const (
	ErrorTypeHomophone   ErrorType = "homophone"
	ErrorTypeConjugation ErrorType = "conjugation"
	ErrorTypeArithmetic  ErrorType = "arithmetic"
	ErrorTypeGrammar     ErrorType = "grammar"
	ErrorTypeAgreement   ErrorType = "agreement"
	ErrorTypeSpelling    ErrorType = "spelling"
	ErrorTypeCustom      ErrorType = "custom"
)

func (t ErrorType) String() string { return string(t) }

// IsKnown reports whether the tag is one of the built-in categories.
func (t ErrorType) IsKnown() bool {
	switch t {
	case ErrorTypeHomophone, ErrorTypeConjugation, ErrorTypeArithmetic,
		ErrorTypeGrammar, ErrorTypeAgreement, ErrorTypeSpelling, ErrorTypeCustom:
		return true
	}
	return false
}

// Decision is the pedagogical next step chosen from a score.
type Decision string

const (
	DecisionAdvance        Decision = "advance"
	DecisionConsolidate    Decision = "consolidate"
	DecisionChangeModality Decision = "change_modality"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	switch d {
	case DecisionAdvance, DecisionConsolidate, DecisionChangeModality:
		return true
	}
	return false
}
