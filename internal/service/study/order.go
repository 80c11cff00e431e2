package study

import (
	"math/rand/v2"
	"sync"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// Reorderer decides the presentation order of a selected queue.
// Implementations must return a permutation of the input.
type Reorderer interface {
	Reorder(concepts []domain.Concept) []domain.Concept
}

// ShuffleOrder is the default Reorderer: a uniform random permutation.
type ShuffleOrder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewShuffleOrder creates a ShuffleOrder drawing from rng.
func NewShuffleOrder(rng *rand.Rand) *ShuffleOrder {
	return &ShuffleOrder{rng: rng}
}

// Reorder returns a shuffled copy of concepts.
func (o *ShuffleOrder) Reorder(concepts []domain.Concept) []domain.Concept {
	out := make([]domain.Concept, len(concepts))
	copy(out, concepts)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// KeepOrder leaves the selector's order untouched.
type KeepOrder struct{}

// Reorder returns concepts as-is.
func (KeepOrder) Reorder(concepts []domain.Concept) []domain.Concept {
	return concepts
}
