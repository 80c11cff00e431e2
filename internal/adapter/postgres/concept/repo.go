// Package concept reads and writes concept group documents.
// A group stores its concepts as a JSONB array; the engine reads them flattened.
package concept

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

const table = "concept_groups"

var columns = []string{"id", "notebook_id", "concepts", "created_at"}

// payloadJSON is the stored shape of one concept inside a group.
type payloadJSON struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source,omitempty"`
}

type groupRow struct {
	ID         uuid.UUID `db:"id"`
	NotebookID uuid.UUID `db:"notebook_id"`
	Concepts   []byte    `db:"concepts"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r groupRow) toDomain() (domain.ConceptGroup, error) {
	var payloads []payloadJSON
	if err := json.Unmarshal(r.Concepts, &payloads); err != nil {
		return domain.ConceptGroup{}, fmt.Errorf("decode concepts of group %s: %w", r.ID, err)
	}

	g := domain.ConceptGroup{
		ID:         r.ID,
		NotebookID: r.NotebookID,
		Concepts:   make([]domain.ConceptPayload, 0, len(payloads)),
		CreatedAt:  r.CreatedAt.UTC(),
	}
	for _, p := range payloads {
		g.Concepts = append(g.Concepts, domain.ConceptPayload{
			Term:       p.Term,
			Definition: p.Definition,
			Source:     p.Source,
		})
	}
	return g, nil
}

// Repo provides concept group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new concept group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListConceptsInNotebook returns every concept of the notebook, groups in
// creation order and concepts in their stored order.
func (r *Repo) ListConceptsInNotebook(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error) {
	groups, err := r.ListGroups(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	var concepts []domain.Concept
	for _, g := range groups {
		concepts = append(concepts, g.Flatten()...)
	}
	return concepts, nil
}

// ListGroups returns the notebook's concept groups in creation order.
func (r *Repo) ListGroups(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"notebook_id": notebookID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	var rows []groupRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "concept groups of notebook", notebookID)
	}

	groups := make([]domain.ConceptGroup, 0, len(rows))
	for _, row := range rows {
		g, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// CreateGroup stores a new concept group. Concepts keep their order so the
// derived concept ids stay stable.
func (r *Repo) CreateGroup(ctx context.Context, group domain.ConceptGroup) error {
	payloads := make([]payloadJSON, 0, len(group.Concepts))
	for _, c := range group.Concepts {
		payloads = append(payloads, payloadJSON{Term: c.Term, Definition: c.Definition, Source: c.Source})
	}
	raw, err := json.Marshal(payloads)
	if err != nil {
		return fmt.Errorf("encode concepts: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(group.ID, group.NotebookID, raw, group.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create group query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "concept group", group.ID)
	}
	return nil
}
