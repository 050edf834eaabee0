package analysis

import (
	"strings"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

// AnalyzeInput is one student text to check.
type AnalyzeInput struct {
	Text      string
	StudentID string
	// Language nil means the default language; an empty string disables
	// language filtering.
	Language *string
}

func (i AnalyzeInput) studentID() string {
	if id := strings.TrimSpace(i.StudentID); id != "" {
		return id
	}
	return domain.DefaultStudentID
}

func (i AnalyzeInput) language() string {
	if i.Language == nil {
		return domain.DefaultLanguage
	}
	return domain.NormalizeTag(*i.Language)
}
