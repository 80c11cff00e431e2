package study

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/pkg/ctxutil"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const time24h = 24 * time.Hour

var baseTime = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

// makeConcepts builds n concepts of one group in notebookID.
func makeConcepts(notebookID uuid.UUID, n int) []domain.Concept {
	group := domain.ConceptGroup{ID: uuid.New(), NotebookID: notebookID}
	for i := 0; i < n; i++ {
		group.Concepts = append(group.Concepts, domain.ConceptPayload{
			Term:       fmt.Sprintf("term %d", i),
			Definition: fmt.Sprintf("definition %d", i),
		})
	}
	return group.Flatten()
}

func staticConcepts(concepts []domain.Concept) *conceptSourceMock {
	return &conceptSourceMock{
		ListConceptsInNotebookFunc: func(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error) {
			return concepts, nil
		},
	}
}

// memoryRecords is a recordStoreMock backed by a map, ordered like the real store.
func memoryRecords(initial ...domain.LearningRecord) (*recordStoreMock, func() map[string]domain.LearningRecord) {
	var mu sync.Mutex
	data := make(map[string]domain.LearningRecord, len(initial))
	for _, r := range initial {
		data[r.ConceptID] = r
	}

	list := func(keep func(domain.LearningRecord) bool) []domain.LearningRecord {
		out := make([]domain.LearningRecord, 0, len(data))
		for _, r := range data {
			if keep(r) {
				out = append(out, r)
			}
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].LastReviewDate.Equal(out[j].LastReviewDate) {
				return out[i].LastReviewDate.After(out[j].LastReviewDate)
			}
			return out[i].ConceptID < out[j].ConceptID
		})
		return out
	}

	mock := &recordStoreMock{
		GetRecordFunc: func(ctx context.Context, learnerID uuid.UUID, conceptID string) (*domain.LearningRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			r, ok := data[conceptID]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &r, nil
		},
		PutRecordFunc: func(ctx context.Context, record domain.LearningRecord) error {
			mu.Lock()
			defer mu.Unlock()
			data[record.ConceptID] = record
			return nil
		},
		QueryRecordsDueByFunc: func(ctx context.Context, learnerID uuid.UUID, before time.Time) ([]domain.LearningRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			return list(func(r domain.LearningRecord) bool { return !r.NextReviewDate.After(before) }), nil
		},
		QueryAllRecordsFunc: func(ctx context.Context, learnerID uuid.UUID) ([]domain.LearningRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			return list(func(domain.LearningRecord) bool { return true }), nil
		},
	}

	snapshot := func() map[string]domain.LearningRecord {
		mu.Lock()
		defer mu.Unlock()
		out := make(map[string]domain.LearningRecord, len(data))
		for k, v := range data {
			out[k] = v
		}
		return out
	}
	return mock, snapshot
}

func okSessions() *sessionStoreMock {
	return &sessionStoreMock{
		CreateSessionFunc: func(ctx context.Context, session *domain.StudySession) error { return nil },
		UpdateSessionFunc: func(ctx context.Context, learnerID, sessionID uuid.UUID, patch domain.SessionPatch) error {
			return nil
		},
		GetSessionFunc: func(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.StudySession, error) {
			return nil, domain.ErrNotFound
		},
	}
}

func okStreaks() *streakToucherMock {
	return &streakToucherMock{
		TouchFunc: func(ctx context.Context, learnerID uuid.UUID) (domain.StreakRecord, error) {
			return domain.StreakRecord{LearnerID: learnerID, ConsecutiveDays: 1}, nil
		},
	}
}

type testDeps struct {
	records  *recordStoreMock
	concepts *conceptSourceMock
	sessions *sessionStoreMock
	streaks  *streakToucherMock
	clock    *fakeClock
	cfg      Config
}

func newTestService(t *testing.T, deps testDeps) *Service {
	t.Helper()

	if deps.sessions == nil {
		deps.sessions = okSessions()
	}
	if deps.streaks == nil {
		deps.streaks = okStreaks()
	}
	if deps.clock == nil {
		deps.clock = newFakeClock(baseTime)
	}
	if deps.cfg == (Config{}) {
		deps.cfg = DefaultConfig()
	}

	return NewService(
		slog.Default(),
		deps.records,
		deps.concepts,
		deps.sessions,
		deps.streaks,
		deps.cfg,
		WithClock(deps.clock),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithReorderer(KeepOrder{}),
	)
}

func learnerCtx(learnerID uuid.UUID) context.Context {
	return ctxutil.WithLearnerID(context.Background(), learnerID)
}

func conceptIDs(concepts []domain.Concept) []string {
	ids := make([]string, 0, len(concepts))
	for _, c := range concepts {
		ids = append(ids, c.ID)
	}
	return ids
}

func record(conceptID string, reps, interval int, ease float64, next, last time.Time) domain.LearningRecord {
	return domain.LearningRecord{
		ConceptID:      conceptID,
		Repetitions:    reps,
		Interval:       interval,
		EaseFactor:     ease,
		NextReviewDate: next,
		LastReviewDate: last,
	}
}
