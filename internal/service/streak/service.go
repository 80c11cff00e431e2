package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/pkg/ctxutil"
)

type streakRepo interface {
	GetStreak(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error)
	GetStreakForUpdate(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error)
	PutStreak(ctx context.Context, record domain.StreakRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service tracks daily study streaks.
type Service struct {
	streaks streakRepo
	tx      txManager
	clock   clock
	log     *slog.Logger
}

// NewService creates a new Streak service. A nil clock means the wall clock.
func NewService(log *slog.Logger, streaks streakRepo, tx txManager, clk clock) *Service {
	if clk == nil {
		clk = systemClock{}
	}
	return &Service{
		streaks: streaks,
		tx:      tx,
		clock:   clk,
		log:     log.With("service", "streak"),
	}
}

// Touch records a qualifying visit for the learner and returns the new streak.
// The read-modify-write runs in one transaction with the row locked.
func (s *Service) Touch(ctx context.Context, learnerID uuid.UUID) (domain.StreakRecord, error) {
	var next domain.StreakRecord

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		prev, err := s.streaks.GetStreakForUpdate(ctx, learnerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get streak: %w", err)
		}
		if err != nil {
			prev = nil
		}

		next = Advance(prev, s.clock.Now())
		next.LearnerID = learnerID

		if err := s.streaks.PutStreak(ctx, next); err != nil {
			return fmt.Errorf("put streak: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.StreakRecord{}, err
	}

	s.log.InfoContext(ctx, "streak touched",
		slog.String("learner_id", learnerID.String()),
		slog.Int("consecutive_days", next.ConsecutiveDays),
	)
	return next, nil
}

// GetStreak returns the caller's streak. A learner who never qualified gets an
// empty week with zero consecutive days.
func (s *Service) GetStreak(ctx context.Context) (*domain.StreakRecord, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.streaks.GetStreak(ctx, learnerID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.StreakRecord{LearnerID: learnerID, Days: domain.EmptyWeek()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return rec, nil
}
