// Package streak implements the StreakRecord repository using PostgreSQL.
package streak

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

const getSQL = `
SELECT learner_id, days, consecutive_days, last_visit_at
FROM streaks
WHERE learner_id = $1`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const upsertSQL = `
INSERT INTO streaks (learner_id, days, consecutive_days, last_visit_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (learner_id) DO UPDATE SET
	days             = EXCLUDED.days,
	consecutive_days = EXCLUDED.consecutive_days,
	last_visit_at    = EXCLUDED.last_visit_at,
	updated_at       = now()`

// Repo provides streak persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new streak repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetStreak returns the learner's streak.
// Returns domain.ErrNotFound if the learner never qualified.
func (r *Repo) GetStreak(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error) {
	return r.get(ctx, getSQL, learnerID)
}

// GetStreakForUpdate is GetStreak with the row locked until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetStreakForUpdate(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error) {
	return r.get(ctx, getForUpdateSQL, learnerID)
}

func (r *Repo) get(ctx context.Context, query string, learnerID uuid.UUID) (*domain.StreakRecord, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, learnerID)

	rec, err := scanStreak(row)
	if err != nil {
		return nil, postgres.MapError(err, "streak", learnerID)
	}
	return rec, nil
}

// PutStreak inserts or replaces the learner's streak.
func (r *Repo) PutStreak(ctx context.Context, record domain.StreakRecord) error {
	days, err := marshalDays(record.Days)
	if err != nil {
		return fmt.Errorf("streak %s: %w", record.LearnerID, err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertSQL,
		record.LearnerID,
		days,
		record.ConsecutiveDays,
		record.LastVisit.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "streak", record.LearnerID)
	}
	return nil
}

func scanStreak(row pgx.Row) (*domain.StreakRecord, error) {
	var (
		rec      domain.StreakRecord
		daysJSON []byte
	)
	if err := row.Scan(&rec.LearnerID, &daysJSON, &rec.ConsecutiveDays, &rec.LastVisit); err != nil {
		return nil, err
	}

	days, err := unmarshalDays(daysJSON)
	if err != nil {
		return nil, fmt.Errorf("streak %s: %w", rec.LearnerID, err)
	}
	rec.Days = days
	rec.LastVisit = rec.LastVisit.UTC()
	return &rec, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for the week marker
// ---------------------------------------------------------------------------

// The days column stores {"mon": true, "tue": false, ...}.
func dayKey(d time.Weekday) string {
	return strings.ToLower(d.String()[:3])
}

func marshalDays(days map[time.Weekday]bool) ([]byte, error) {
	out := make(map[string]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out[dayKey(d)] = days[d]
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}
	return data, nil
}

func unmarshalDays(data []byte) (map[time.Weekday]bool, error) {
	days := domain.EmptyWeek()
	if len(data) == 0 {
		return days, nil
	}

	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal days: %w", err)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = raw[dayKey(d)]
	}
	return days, nil
}
