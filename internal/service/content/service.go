package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxConceptsPerGroup = 500
	MaxTermLength       = 500
	MaxDefinitionLength = 5000
	MaxSourceLength     = 1000
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type groupRepo interface {
	CreateGroup(ctx context.Context, group domain.ConceptGroup) error
	ListGroups(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error)
}

// listingCache drops stale concept listings after an ingest.
type listingCache interface {
	Invalidate(notebookID uuid.UUID)
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service ingests concept groups produced by the content layer.
// Stored groups are never edited, which keeps derived concept ids stable.
type Service struct {
	log    *slog.Logger
	groups groupRepo
	cache  listingCache
	clock  clock
}

// NewService creates a new Content service. cache may be nil.
func NewService(logger *slog.Logger, groups groupRepo, cache listingCache) *Service {
	return &Service{
		log:    logger.With("service", "content"),
		groups: groups,
		cache:  cache,
		clock:  systemClock{},
	}
}
