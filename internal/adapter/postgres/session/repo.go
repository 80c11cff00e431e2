// Package session implements the StudySession repository using PostgreSQL.
// Reads use raw SQL since the metrics column is JSONB requiring custom
// marshal/unmarshal logic; partial updates are built with squirrel.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, learner_id, notebook_id, mode, status, concepts_studied, started_at, ended_at, metrics`

const createSQL = `
INSERT INTO study_sessions (id, learner_id, notebook_id, mode, status, concepts_studied, started_at, metrics)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND learner_id = $2`

const countByLearnerSQL = `
SELECT count(*) FROM study_sessions WHERE learner_id = $1`

const listByLearnerSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE learner_id = $1
ORDER BY started_at DESC, id
LIMIT $2 OFFSET $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetSession returns a session by primary key filtered by learner.
// Returns domain.ErrNotFound if the session does not exist or belongs to another learner.
func (r *Repo) GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.StudySession, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, sessionID, learnerID)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return session, nil
}

// ListSessions returns a page of the learner's sessions, newest first, and the total count.
func (r *Repo) ListSessions(ctx context.Context, learnerID uuid.UUID, limit, offset int) ([]domain.StudySession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := querier.QueryRow(ctx, countByLearnerSQL, learnerID).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "sessions of learner", learnerID)
	}

	rows, err := querier.Query(ctx, listByLearnerSQL, learnerID, limit, offset)
	if err != nil {
		return nil, 0, postgres.MapError(err, "sessions of learner", learnerID)
	}
	defer rows.Close()

	sessions := []domain.StudySession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "sessions of learner", learnerID)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "sessions of learner", learnerID)
	}

	return sessions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateSession inserts a new study session.
func (r *Repo) CreateSession(ctx context.Context, session *domain.StudySession) error {
	metrics, err := json.Marshal(toMetricsJSON(session.Metrics))
	if err != nil {
		return fmt.Errorf("session %s: marshal metrics: %w", session.ID, err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		session.ID,
		session.LearnerID,
		session.NotebookID,
		string(session.Mode),
		string(session.Status),
		session.ConceptsStudied,
		session.StartTime.UTC().Truncate(time.Microsecond),
		metrics,
	)
	if err != nil {
		return postgres.MapError(err, "session", session.ID)
	}
	return nil
}

// UpdateSession applies the non-nil fields of patch.
// Returns domain.ErrNotFound if the session does not exist or belongs to another learner.
func (r *Repo) UpdateSession(ctx context.Context, learnerID, sessionID uuid.UUID, patch domain.SessionPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	b := postgres.Builder.Update("study_sessions")
	if patch.Status != nil {
		b = b.Set("status", string(*patch.Status))
	}
	if patch.ConceptsStudied != nil {
		b = b.Set("concepts_studied", *patch.ConceptsStudied)
	}
	if patch.EndTime != nil {
		b = b.Set("ended_at", patch.EndTime.UTC().Truncate(time.Microsecond))
	}
	if patch.Metrics != nil {
		metrics, err := json.Marshal(toMetricsJSON(*patch.Metrics))
		if err != nil {
			return fmt.Errorf("session %s: marshal metrics: %w", sessionID, err)
		}
		b = b.Set("metrics", metrics)
	}

	query, args, err := b.
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Eq{"learner_id": learnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update session query: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanSession scans a single session row; pgx.Rows satisfies pgx.Row.
func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		id              uuid.UUID
		learnerID       uuid.UUID
		notebookID      uuid.UUID
		mode            string
		status          string
		conceptsStudied int
		startedAt       time.Time
		endedAt         *time.Time
		metricsJSON     []byte
	)

	if err := row.Scan(&id, &learnerID, &notebookID, &mode, &status, &conceptsStudied, &startedAt, &endedAt, &metricsJSON); err != nil {
		return nil, err
	}

	metrics, err := unmarshalMetrics(metricsJSON)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}

	session := &domain.StudySession{
		ID:              id,
		LearnerID:       learnerID,
		NotebookID:      notebookID,
		Mode:            domain.SessionMode(mode),
		Status:          domain.SessionStatus(status),
		ConceptsStudied: conceptsStudied,
		StartTime:       startedAt.UTC(),
		Metrics:         metrics,
	}
	if endedAt != nil {
		end := endedAt.UTC()
		session.EndTime = &end
	}
	return session, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for SessionMetrics
// ---------------------------------------------------------------------------

// metricsJSON is an intermediate struct for JSON marshaling of domain.SessionMetrics.
// Domain types have no json tags, so the repo layer handles serialization.
type metricsJSON struct {
	TotalConcepts    int `json:"total_concepts"`
	ConceptsReviewed int `json:"concepts_reviewed"`
	Mastered         int `json:"mastered"`
	Reviewing        int `json:"reviewing"`
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

func toMetricsJSON(m domain.SessionMetrics) metricsJSON {
	return metricsJSON{
		TotalConcepts:    m.TotalConcepts,
		ConceptsReviewed: m.ConceptsReviewed,
		Mastered:         m.Mastered,
		Reviewing:        m.Reviewing,
		TimeSpentSeconds: m.TimeSpentSeconds,
	}
}

func unmarshalMetrics(data []byte) (domain.SessionMetrics, error) {
	if len(data) == 0 {
		return domain.SessionMetrics{}, nil
	}

	var j metricsJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return domain.SessionMetrics{}, fmt.Errorf("unmarshal session metrics: %w", err)
	}
	return domain.SessionMetrics{
		TotalConcepts:    j.TotalConcepts,
		ConceptsReviewed: j.ConceptsReviewed,
		Mastered:         j.Mastered,
		Reviewing:        j.Reviewing,
		TimeSpentSeconds: j.TimeSpentSeconds,
	}, nil
}
