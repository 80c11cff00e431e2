// Package learningrecord implements the LearningRecord repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package learningrecord

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

const table = "learning_records"

var columns = []string{
	"learner_id",
	"concept_id",
	"ease_factor",
	"interval_days",
	"repetitions",
	"next_review_at",
	"last_review_at",
}

const upsertSuffix = `ON CONFLICT (learner_id, concept_id) DO UPDATE SET
	ease_factor    = EXCLUDED.ease_factor,
	interval_days  = EXCLUDED.interval_days,
	repetitions    = EXCLUDED.repetitions,
	next_review_at = EXCLUDED.next_review_at,
	last_review_at = EXCLUDED.last_review_at,
	updated_at     = now()`

// minEase mirrors the table's CHECK constraint.
const minEase = 1.3

type recordRow struct {
	LearnerID    uuid.UUID `db:"learner_id"`
	ConceptID    string    `db:"concept_id"`
	EaseFactor   float64   `db:"ease_factor"`
	IntervalDays int       `db:"interval_days"`
	Repetitions  int       `db:"repetitions"`
	NextReviewAt time.Time `db:"next_review_at"`
	LastReviewAt time.Time `db:"last_review_at"`
}

func (r recordRow) toDomain() domain.LearningRecord {
	return domain.LearningRecord{
		LearnerID:      r.LearnerID,
		ConceptID:      r.ConceptID,
		EaseFactor:     r.EaseFactor,
		Interval:       r.IntervalDays,
		Repetitions:    r.Repetitions,
		NextReviewDate: r.NextReviewAt.UTC(),
		LastReviewDate: r.LastReviewAt.UTC(),
	}
}

// Repo provides learning record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new learning record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetRecord returns the learner's record for one concept.
// Returns domain.ErrNotFound if the concept was never answered.
func (r *Repo) GetRecord(ctx context.Context, learnerID uuid.UUID, conceptID string) (*domain.LearningRecord, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"learner_id": learnerID}).
		Where(sq.Eq{"concept_id": conceptID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "learning record", conceptID)
	}

	rec := row.toDomain()
	return &rec, nil
}

// PutRecord inserts or replaces the record. Last write wins.
func (r *Repo) PutRecord(ctx context.Context, record domain.LearningRecord) error {
	if err := validate(record); err != nil {
		return err
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			record.LearnerID,
			record.ConceptID,
			record.EaseFactor,
			record.Interval,
			record.Repetitions,
			record.NextReviewDate.UTC(),
			record.LastReviewDate.UTC(),
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build put record query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "learning record", record.ConceptID)
	}
	return nil
}

// QueryRecordsDueBy returns the learner's records with a next review at or before
// the given time, earliest first.
func (r *Repo) QueryRecordsDueBy(ctx context.Context, learnerID uuid.UUID, before time.Time) ([]domain.LearningRecord, error) {
	return r.list(ctx, learnerID, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"learner_id": learnerID}).
		Where(sq.LtOrEq{"next_review_at": before.UTC()}).
		OrderBy("next_review_at ASC", "concept_id ASC"))
}

// QueryAllRecords returns every record of the learner, most recently reviewed first.
func (r *Repo) QueryAllRecords(ctx context.Context, learnerID uuid.UUID) ([]domain.LearningRecord, error) {
	return r.list(ctx, learnerID, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"learner_id": learnerID}).
		OrderBy("last_review_at DESC", "concept_id ASC"))
}

func (r *Repo) list(ctx context.Context, learnerID uuid.UUID, b sq.SelectBuilder) ([]domain.LearningRecord, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "learning records of learner", learnerID)
	}

	out := make([]domain.LearningRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func validate(record domain.LearningRecord) error {
	var errs []domain.FieldError

	if record.LearnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "learner_id", Message: "required"})
	}
	if record.ConceptID == "" {
		errs = append(errs, domain.FieldError{Field: "concept_id", Message: "required"})
	}
	if record.EaseFactor < minEase {
		errs = append(errs, domain.FieldError{Field: "ease_factor", Message: "must be at least 1.3"})
	}
	if record.Interval < 0 {
		errs = append(errs, domain.FieldError{Field: "interval", Message: "must be non-negative"})
	}
	if record.Repetitions < 0 {
		errs = append(errs, domain.FieldError{Field: "repetitions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
