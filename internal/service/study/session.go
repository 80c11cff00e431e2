package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study/sm2"
	"github.com/heartmarshall/conceptdeck-backend/pkg/ctxutil"
)

// StartSession selects and orders a queue for the notebook and opens a session.
// Nothing is persisted when the selection is empty.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*SessionSnapshot, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	queue, mode, err := s.selectForMode(ctx, learnerID, input.NotebookID, input.Mode)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if mode != input.Mode {
		s.log.InfoContext(ctx, "nothing due, falling back to new concepts",
			slog.String("learner_id", learnerID.String()),
			slog.String("notebook_id", input.NotebookID.String()),
		)
	}
	if len(queue) == 0 {
		return nil, domain.NewValidationError("notebook_id", "no concepts available for this mode")
	}

	queue = s.order.Reorder(queue)

	session := domain.StudySession{
		ID:         uuid.New(),
		LearnerID:  learnerID,
		NotebookID: input.NotebookID,
		Mode:       mode,
		Status:     domain.SessionStatusActive,
		StartTime:  s.clock.Now(),
		Metrics:    domain.SessionMetrics{TotalConcepts: len(queue)},
	}

	if err := s.sessions.CreateSession(ctx, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	a := newActiveSession(session, queue)
	s.active.put(a)

	s.log.InfoContext(ctx, "session started",
		slog.String("learner_id", learnerID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("mode", mode.String()),
		slog.Int("concepts", len(queue)),
	)

	a.mu.Lock()
	defer a.mu.Unlock()
	snap := s.snapshot(a, session.StartTime)
	return &snap, nil
}

// RecordAnswer applies the answer to the session's current concept, persists the
// updated learning record and advances the queue. A failed record write is
// logged and reported in the result; it never blocks the session.
func (s *Service) RecordAnswer(ctx context.Context, input RecordAnswerInput) (*AnswerResult, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.lookup(learnerID, input.SessionID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.completed {
		return nil, fmt.Errorf("session %s: %w", input.SessionID, domain.ErrNotFound)
	}

	current, ok := a.primary.Peek()
	if !ok || current.ID != input.ConceptID {
		return nil, domain.NewValidationError("concept_id", "is not the current concept")
	}

	now := s.clock.Now()
	result := &AnswerResult{}
	result.Record, result.Persisted = s.applyAnswer(ctx, learnerID, current.ID, input.Quality, now)

	m := &a.session.Metrics
	m.ConceptsReviewed++
	if input.Quality >= domain.QualityGood {
		m.Mastered++
	} else {
		m.Reviewing++
	}
	a.studied[current.ID] = struct{}{}
	a.session.ConceptsStudied = len(a.studied)
	a.lastActivity = now

	a.primary.PopFront()
	if input.Quality < domain.QualityDifficult && a.session.Mode != domain.SessionModeReview {
		a.retry.PushBack(current)
		result.Requeued = true
	}

	if !a.advance(s.cfg.MaxRetryPasses) {
		_, completeErr := s.complete(ctx, a, now)
		result.SummaryPersisted = completeErr == nil
	}

	result.Snapshot = s.snapshot(a, now)
	return result, nil
}

// applyAnswer reads, updates and writes the learning record for one answer.
func (s *Service) applyAnswer(
	ctx context.Context,
	learnerID uuid.UUID,
	conceptID string,
	quality domain.Quality,
	now time.Time,
) (*domain.LearningRecord, bool) {
	prev, err := s.records.GetRecord(ctx, learnerID, conceptID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "read learning record failed, answer not persisted",
			slog.String("learner_id", learnerID.String()),
			slog.String("concept_id", conceptID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	if err != nil {
		prev = nil
	}

	next := sm2.Update(s.cfg.SRS, prev, quality, now)
	next.LearnerID = learnerID
	next.ConceptID = conceptID

	if err := s.records.PutRecord(ctx, next); err != nil {
		s.log.WarnContext(ctx, "write learning record failed",
			slog.String("learner_id", learnerID.String()),
			slog.String("concept_id", conceptID),
			slog.String("error", err.Error()),
		)
		return &next, false
	}
	return &next, true
}

// CompleteSession seals the session and persists its summary. When the summary
// cannot be persisted the session is still completed and its snapshot is
// returned together with the error.
func (s *Service) CompleteSession(ctx context.Context, sessionID uuid.UUID) (*SessionSnapshot, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.lookup(learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.completed {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	now := s.clock.Now()
	snap, err := s.complete(ctx, a, now)
	return &snap, err
}

// complete seals a and removes it from the registry. Caller holds a.mu.
func (s *Service) complete(ctx context.Context, a *activeSession, now time.Time) (SessionSnapshot, error) {
	a.completed = true
	a.primary.Drain()
	a.retry.Drain()

	end := now
	a.session.Status = domain.SessionStatusCompleted
	a.session.EndTime = &end
	a.session.Metrics.TimeSpentSeconds = elapsedSeconds(a.session.StartTime, now)

	s.active.remove(a.session.ID)

	status := a.session.Status
	studied := a.session.ConceptsStudied
	metrics := a.session.Metrics
	patch := domain.SessionPatch{
		Status:          &status,
		ConceptsStudied: &studied,
		EndTime:         &end,
		Metrics:         &metrics,
	}

	var persistErr error
	if err := s.sessions.UpdateSession(ctx, a.session.LearnerID, a.session.ID, patch); err != nil {
		s.log.ErrorContext(ctx, "persist session summary failed",
			slog.String("session_id", a.session.ID.String()),
			slog.String("error", err.Error()),
		)
		persistErr = fmt.Errorf("update session: %w", err)
	}

	if metrics.ConceptsReviewed >= s.cfg.StreakMinReviews && s.streaks != nil {
		if _, err := s.streaks.Touch(ctx, a.session.LearnerID); err != nil {
			s.log.WarnContext(ctx, "streak update failed",
				slog.String("learner_id", a.session.LearnerID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "session completed",
		slog.String("learner_id", a.session.LearnerID.String()),
		slog.String("session_id", a.session.ID.String()),
		slog.Int("reviewed", metrics.ConceptsReviewed),
		slog.Int("mastered", metrics.Mastered),
		slog.Int("time_spent_seconds", metrics.TimeSpentSeconds),
	)

	return s.snapshot(a, now), persistErr
}

// CurrentSession returns the live snapshot of an active session. Sessions no
// longer held in memory are served from the store with no current concept.
func (s *Service) CurrentSession(ctx context.Context, sessionID uuid.UUID) (*SessionSnapshot, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.lookup(learnerID, sessionID)
	if err != nil {
		stored, getErr := s.sessions.GetSession(ctx, learnerID, sessionID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("get session: %w", getErr)
		}
		return &SessionSnapshot{Session: *stored}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	snap := s.snapshot(a, s.clock.Now())
	return &snap, nil
}

// ListSessions returns the learner's persisted session history, newest first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) ([]domain.StudySession, int, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	sessions, total, err := s.sessions.ListSessions(ctx, learnerID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, total, nil
}

// ReapIdle force-completes sessions without activity for longer than the
// configured idle timeout and returns how many were completed.
func (s *Service) ReapIdle(ctx context.Context) int {
	if s.cfg.IdleTimeout <= 0 {
		return 0
	}

	now := s.clock.Now()
	cutoff := now.Add(-s.cfg.IdleTimeout)
	reaped := s.completeWhere(ctx, now, func(a *activeSession) bool {
		return a.lastActivity.Before(cutoff)
	})

	if reaped > 0 {
		s.log.InfoContext(ctx, "idle sessions completed", slog.Int("count", reaped))
	}
	return reaped
}

// CompleteAll seals every session still held in memory. It is called on shutdown.
func (s *Service) CompleteAll(ctx context.Context) int {
	n := s.completeWhere(ctx, s.clock.Now(), func(*activeSession) bool { return true })
	if n > 0 {
		s.log.InfoContext(ctx, "open sessions completed on shutdown", slog.Int("count", n))
	}
	return n
}

func (s *Service) completeWhere(ctx context.Context, now time.Time, match func(a *activeSession) bool) int {
	count := 0
	for _, a := range s.active.all() {
		a.mu.Lock()
		if !a.completed && match(a) {
			// The error is already logged by complete; the session is sealed either way.
			_, _ = s.complete(ctx, a, now)
			count++
		}
		a.mu.Unlock()
	}
	return count
}

// ActiveSessions returns the number of sessions currently held in memory.
func (s *Service) ActiveSessions() int {
	return s.active.len()
}

// lookup returns the learner's active session. Sessions owned by another
// learner are reported as not found.
func (s *Service) lookup(learnerID, sessionID uuid.UUID) (*activeSession, error) {
	a, ok := s.active.get(sessionID)
	if !ok || a.session.LearnerID != learnerID {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return a, nil
}

// snapshot copies a's state. Caller holds a.mu.
func (s *Service) snapshot(a *activeSession, now time.Time) SessionSnapshot {
	session := a.session
	if !a.completed {
		session.Metrics.TimeSpentSeconds = elapsedSeconds(session.StartTime, now)
	}

	snap := SessionSnapshot{
		Session:      session,
		Remaining:    a.primary.Len(),
		RetryPending: a.retry.Len(),
		RetryPass:    a.retryPasses,
	}
	if c, ok := a.primary.Peek(); ok {
		snap.Current = &c
	}
	return snap
}

func elapsedSeconds(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
