package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// StartSessionInput holds the parameters for starting a study session.
type StartSessionInput struct {
	NotebookID uuid.UUID
	Mode       domain.SessionMode
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.NotebookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "notebook_id", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be STUDY, REVIEW, or QUIZ"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordAnswerInput holds one answer to the current concept of a session.
type RecordAnswerInput struct {
	SessionID uuid.UUID
	ConceptID string
	Quality   domain.Quality
}

// Validate checks all fields and collects all errors.
func (i *RecordAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.ConceptID == "" {
		errs = append(errs, domain.FieldError{Field: "concept_id", Message: "required"})
	}
	if !i.Quality.IsValid() {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListSessionsInput holds the pagination of the session history.
type ListSessionsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
