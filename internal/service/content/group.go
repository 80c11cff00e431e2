package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/pkg/ctxutil"
)

// IngestGroup stores a new concept group and returns it with its id assigned.
func (s *Service) IngestGroup(ctx context.Context, input IngestGroupInput) (*domain.ConceptGroup, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	group := domain.ConceptGroup{
		ID:         uuid.New(),
		NotebookID: input.NotebookID,
		Concepts:   make([]domain.ConceptPayload, 0, len(input.Concepts)),
		CreatedAt:  s.clock.Now().UTC(),
	}
	for _, c := range input.Concepts {
		group.Concepts = append(group.Concepts, domain.ConceptPayload{
			Term:       strings.TrimSpace(c.Term),
			Definition: strings.TrimSpace(c.Definition),
			Source:     strings.TrimSpace(c.Source),
		})
	}

	if err := s.groups.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(group.NotebookID)
	}

	s.log.InfoContext(ctx, "concept group ingested",
		slog.String("learner_id", learnerID.String()),
		slog.String("notebook_id", group.NotebookID.String()),
		slog.String("group_id", group.ID.String()),
		slog.Int("concepts", len(group.Concepts)),
	)

	return &group, nil
}

// ListGroups returns the notebook's concept groups in creation order.
func (s *Service) ListGroups(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error) {
	if _, ok := ctxutil.LearnerIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if notebookID == uuid.Nil {
		return nil, domain.NewValidationError("notebook_id", "required")
	}

	groups, err := s.groups.ListGroups(ctx, notebookID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}
