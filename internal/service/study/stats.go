package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/pkg/ctxutil"
)

const dueWeekWindow = 7 * 24 * time.Hour

// GetStats aggregates the learner's progress in a notebook. Read-only.
func (s *Service) GetStats(ctx context.Context, notebookID uuid.UUID) (*domain.NotebookStats, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	view, err := s.loadNotebook(ctx, notebookID, func(ctx context.Context) ([]domain.LearningRecord, error) {
		return s.records.QueryAllRecords(ctx, learnerID)
	})
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	now := s.clock.Now()
	weekEnd := now.Add(dueWeekWindow)
	records := dedupe(view.records)

	stats := &domain.NotebookStats{
		TotalConcepts: len(view.concepts),
		Unseen:        len(view.concepts) - len(records),
	}
	for i := range records {
		r := &records[i]
		switch r.Bucket() {
		case domain.MasteryBucketMastered:
			stats.Mastered++
		case domain.MasteryBucketLearning:
			stats.Learning++
		default:
			stats.New++
		}
		if r.IsDue(now) {
			stats.DueToday++
		}
		if !r.NextReviewDate.After(weekEnd) {
			stats.DueThisWeek++
		}
	}
	return stats, nil
}

// GetDueCount returns how many notebook concepts are due for review now.
func (s *Service) GetDueCount(ctx context.Context, notebookID uuid.UUID) (int, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	view, err := s.loadNotebook(ctx, notebookID, func(ctx context.Context) ([]domain.LearningRecord, error) {
		return s.records.QueryRecordsDueBy(ctx, learnerID, now)
	})
	if err != nil {
		return 0, fmt.Errorf("get due count: %w", err)
	}
	return len(dueBy(dedupe(view.records), now)), nil
}

// GetNextRecommendedDate returns the earliest upcoming review in the notebook,
// or the start of the next UTC day when nothing is scheduled after now.
func (s *Service) GetNextRecommendedDate(ctx context.Context, notebookID uuid.UUID) (time.Time, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return time.Time{}, domain.ErrUnauthorized
	}

	view, err := s.loadNotebook(ctx, notebookID, func(ctx context.Context) ([]domain.LearningRecord, error) {
		return s.records.QueryAllRecords(ctx, learnerID)
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("get next recommended date: %w", err)
	}

	now := s.clock.Now()
	var next time.Time
	for _, r := range view.records {
		if !r.NextReviewDate.After(now) {
			continue
		}
		if next.IsZero() || r.NextReviewDate.Before(next) {
			next = r.NextReviewDate
		}
	}
	if next.IsZero() {
		return startOfNextDay(now), nil
	}
	return next, nil
}

// startOfNextDay returns midnight UTC of the day after now.
func startOfNextDay(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day()+1, 0, 0, 0, 0, time.UTC)
}
