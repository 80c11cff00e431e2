package testhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedConceptGroup creates a concept group with n concepts in the given notebook.
// Pass uuid.Nil to get a fresh notebook.
func SeedConceptGroup(t *testing.T, pool *pgxpool.Pool, notebookID uuid.UUID, n int) domain.ConceptGroup {
	t.Helper()

	if notebookID == uuid.Nil {
		notebookID = uuid.New()
	}
	suffix := uniqueSuffix()

	group := domain.ConceptGroup{
		ID:         uuid.New(),
		NotebookID: notebookID,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	stored := make([]map[string]string, 0, n)
	for i := 0; i < n; i++ {
		p := domain.ConceptPayload{
			Term:       fmt.Sprintf("term-%s-%d", suffix, i),
			Definition: fmt.Sprintf("definition %d", i),
		}
		group.Concepts = append(group.Concepts, p)
		stored = append(stored, map[string]string{"term": p.Term, "definition": p.Definition})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("testhelper: SeedConceptGroup marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO concept_groups (id, notebook_id, concepts, created_at) VALUES ($1, $2, $3, $4)`,
		group.ID, group.NotebookID, raw, group.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConceptGroup insert: %v", err)
	}

	return group
}

// SeedRecord inserts a learning record as-is.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, rec domain.LearningRecord) domain.LearningRecord {
	t.Helper()

	rec.NextReviewDate = rec.NextReviewDate.UTC().Truncate(time.Microsecond)
	rec.LastReviewDate = rec.LastReviewDate.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learning_records (learner_id, concept_id, ease_factor, interval_days, repetitions, next_review_at, last_review_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.LearnerID, rec.ConceptID, rec.EaseFactor, rec.Interval, rec.Repetitions, rec.NextReviewDate, rec.LastReviewDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}
