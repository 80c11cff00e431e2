package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConceptPayload is the study content of one concept as stored inside its group.
type ConceptPayload struct {
	Term       string
	Definition string
	Source     string
}

// ConceptGroup is the content-layer document holding the concepts extracted
// for one notebook. The engine reads groups but never mutates them.
type ConceptGroup struct {
	ID         uuid.UUID
	NotebookID uuid.UUID
	Concepts   []ConceptPayload
	CreatedAt  time.Time
}

// Concept is one flattened, addressable unit of study content.
type Concept struct {
	ID         string
	GroupID    uuid.UUID
	NotebookID uuid.UUID
	Term       string
	Definition string
	Source     string
}

// ConceptID derives the stable concept identifier "<groupID>-<index>".
// It stays valid for the lifetime of the group document.
func ConceptID(groupID uuid.UUID, index int) string {
	return fmt.Sprintf("%s-%d", groupID, index)
}

// Flatten expands the group into concepts in their stored order.
func (g ConceptGroup) Flatten() []Concept {
	concepts := make([]Concept, 0, len(g.Concepts))
	for i, p := range g.Concepts {
		concepts = append(concepts, Concept{
			ID:         ConceptID(g.ID, i),
			GroupID:    g.ID,
			NotebookID: g.NotebookID,
			Term:       p.Term,
			Definition: p.Definition,
			Source:     p.Source,
		})
	}
	return concepts
}
