package content

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// IngestGroupInput holds one extracted batch of concepts for a notebook.
type IngestGroupInput struct {
	NotebookID uuid.UUID
	Concepts   []domain.ConceptPayload
}

// Validate checks all fields and collects all errors.
func (i IngestGroupInput) Validate() error {
	var errs []domain.FieldError

	if i.NotebookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "notebook_id", Message: "required"})
	}

	if len(i.Concepts) == 0 {
		errs = append(errs, domain.FieldError{Field: "concepts", Message: "at least one concept required"})
	}
	if len(i.Concepts) > MaxConceptsPerGroup {
		errs = append(errs, domain.FieldError{Field: "concepts", Message: fmt.Sprintf("too many (max %d)", MaxConceptsPerGroup)})
	}

	for idx, c := range i.Concepts {
		field := fmt.Sprintf("concepts[%d]", idx)
		if strings.TrimSpace(c.Term) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".term", Message: "required"})
		}
		if len(c.Term) > MaxTermLength {
			errs = append(errs, domain.FieldError{Field: field + ".term", Message: fmt.Sprintf("too long (max %d)", MaxTermLength)})
		}
		if strings.TrimSpace(c.Definition) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".definition", Message: "required"})
		}
		if len(c.Definition) > MaxDefinitionLength {
			errs = append(errs, domain.FieldError{Field: field + ".definition", Message: fmt.Sprintf("too long (max %d)", MaxDefinitionLength)})
		}
		if len(c.Source) > MaxSourceLength {
			errs = append(errs, domain.FieldError{Field: field + ".source", Message: fmt.Sprintf("too long (max %d)", MaxSourceLength)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
