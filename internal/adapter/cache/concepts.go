// Package cache provides read-through caches in front of store adapters.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

type conceptLister interface {
	ListConceptsInNotebook(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error)
}

// Concepts caches notebook concept listings for a bounded time.
// Concept groups are immutable once stored, so the only staleness is a
// newly ingested group, which callers clear with Invalidate.
type Concepts struct {
	next conceptLister
	lru  *expirable.LRU[uuid.UUID, []domain.Concept]
}

// NewConcepts wraps next with an LRU of at most size notebooks, each kept for ttl.
func NewConcepts(next conceptLister, size int, ttl time.Duration) *Concepts {
	return &Concepts{
		next: next,
		lru:  expirable.NewLRU[uuid.UUID, []domain.Concept](size, nil, ttl),
	}
}

// ListConceptsInNotebook returns the cached listing or loads it from the wrapped store.
// Errors are not cached.
func (c *Concepts) ListConceptsInNotebook(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error) {
	if concepts, ok := c.lru.Get(notebookID); ok {
		return slices.Clone(concepts), nil
	}

	concepts, err := c.next.ListConceptsInNotebook(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	c.lru.Add(notebookID, slices.Clone(concepts))
	return concepts, nil
}

// Invalidate drops the cached listing of one notebook.
func (c *Concepts) Invalidate(notebookID uuid.UUID) {
	c.lru.Remove(notebookID)
}

// Len reports the number of cached notebooks.
func (c *Concepts) Len() int {
	return c.lru.Len()
}
