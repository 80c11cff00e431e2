package study

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/pkg/ctxutil"
)

// notebookView is a learner's records restricted to one notebook.
type notebookView struct {
	concepts []domain.Concept
	byID     map[string]domain.Concept
	records  []domain.LearningRecord
}

// loadNotebook fetches the notebook's concepts and the learner's records
// concurrently and keeps only the records belonging to the notebook.
// loadRecords decides which records are read.
func (s *Service) loadNotebook(
	ctx context.Context,
	notebookID uuid.UUID,
	loadRecords func(ctx context.Context) ([]domain.LearningRecord, error),
) (notebookView, error) {
	var (
		concepts []domain.Concept
		records  []domain.LearningRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		concepts, err = s.concepts.ListConceptsInNotebook(gctx, notebookID)
		if err != nil {
			return fmt.Errorf("list concepts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = loadRecords(gctx)
		if err != nil {
			return fmt.Errorf("query records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return notebookView{}, err
	}

	view := notebookView{
		concepts: concepts,
		byID:     make(map[string]domain.Concept, len(concepts)),
		records:  make([]domain.LearningRecord, 0, len(records)),
	}
	for _, c := range concepts {
		view.byID[c.ID] = c
	}
	for _, r := range records {
		if _, ok := view.byID[r.ConceptID]; ok {
			view.records = append(view.records, r)
		}
	}
	return view, nil
}

// SelectNewConcepts returns up to limit notebook concepts the learner has never
// answered, in random order. A non-positive limit falls back to the configured one.
func (s *Service) SelectNewConcepts(ctx context.Context, notebookID uuid.UUID, limit int) ([]domain.Concept, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.selectNew(ctx, learnerID, notebookID, limit)
}

func (s *Service) selectNew(ctx context.Context, learnerID, notebookID uuid.UUID, limit int) ([]domain.Concept, error) {
	if limit <= 0 {
		limit = s.cfg.NewLimit
	}

	view, err := s.loadNotebook(ctx, notebookID, func(ctx context.Context) ([]domain.LearningRecord, error) {
		return s.records.QueryAllRecords(ctx, learnerID)
	})
	if err != nil {
		return nil, fmt.Errorf("select new: %w", err)
	}

	seen := make(map[string]struct{}, len(view.records)+len(view.concepts))
	for _, r := range view.records {
		seen[r.ConceptID] = struct{}{}
	}

	unseen := make([]domain.Concept, 0, len(view.concepts))
	for _, c := range view.concepts {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		unseen = append(unseen, c)
	}

	s.shuffle(unseen)
	return truncate(unseen, limit), nil
}

// SelectDueConcepts returns the notebook concepts whose next review is due,
// largest interval first. Ties keep the store's order.
func (s *Service) SelectDueConcepts(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.selectDue(ctx, learnerID, notebookID)
}

func (s *Service) selectDue(ctx context.Context, learnerID, notebookID uuid.UUID) ([]domain.Concept, error) {
	now := s.clock.Now()

	view, err := s.loadNotebook(ctx, notebookID, func(ctx context.Context) ([]domain.LearningRecord, error) {
		return s.records.QueryRecordsDueBy(ctx, learnerID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("select due: %w", err)
	}

	due := dueBy(dedupe(view.records), now)
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Interval > due[j].Interval
	})

	return view.toConcepts(due), nil
}

// SelectQuizConcepts returns up to limit previously answered notebook concepts
// in random order. A non-positive limit falls back to the configured one.
func (s *Service) SelectQuizConcepts(ctx context.Context, notebookID uuid.UUID, limit int) ([]domain.Concept, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.selectQuiz(ctx, learnerID, notebookID, limit)
}

func (s *Service) selectQuiz(ctx context.Context, learnerID, notebookID uuid.UUID, limit int) ([]domain.Concept, error) {
	if limit <= 0 {
		limit = s.cfg.QuizLimit
	}

	view, err := s.loadNotebook(ctx, notebookID, func(ctx context.Context) ([]domain.LearningRecord, error) {
		return s.records.QueryAllRecords(ctx, learnerID)
	})
	if err != nil {
		return nil, fmt.Errorf("select quiz: %w", err)
	}

	studied := view.toConcepts(dedupe(view.records))
	s.shuffle(studied)
	return truncate(studied, limit), nil
}

// selectForMode runs the strategy matching mode. An empty review selection
// falls back to new concepts; the returned mode is the one actually used.
func (s *Service) selectForMode(
	ctx context.Context,
	learnerID, notebookID uuid.UUID,
	mode domain.SessionMode,
) ([]domain.Concept, domain.SessionMode, error) {
	switch mode {
	case domain.SessionModeReview:
		due, err := s.selectDue(ctx, learnerID, notebookID)
		if err != nil {
			return nil, mode, err
		}
		if len(due) > 0 {
			return due, mode, nil
		}
		fresh, err := s.selectNew(ctx, learnerID, notebookID, 0)
		return fresh, domain.SessionModeStudy, err
	case domain.SessionModeQuiz:
		quiz, err := s.selectQuiz(ctx, learnerID, notebookID, 0)
		return quiz, mode, err
	default:
		fresh, err := s.selectNew(ctx, learnerID, notebookID, 0)
		return fresh, mode, err
	}
}

func (v notebookView) toConcepts(records []domain.LearningRecord) []domain.Concept {
	out := make([]domain.Concept, 0, len(records))
	for _, r := range records {
		out = append(out, v.byID[r.ConceptID])
	}
	return out
}

// dedupe keeps the first record of every concept.
func dedupe(records []domain.LearningRecord) []domain.LearningRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.LearningRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ConceptID]; ok {
			continue
		}
		seen[r.ConceptID] = struct{}{}
		out = append(out, r)
	}
	return out
}

// dueBy keeps the records whose next review is at or before now.
func dueBy(records []domain.LearningRecord, now time.Time) []domain.LearningRecord {
	out := records[:0]
	for i := range records {
		if records[i].IsDue(now) {
			out = append(out, records[i])
		}
	}
	return out
}

func truncate(concepts []domain.Concept, limit int) []domain.Concept {
	if limit > 0 && len(concepts) > limit {
		return concepts[:limit]
	}
	return concepts
}
