package study

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study/sm2"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordStore interface {
	GetRecord(ctx context.Context, learnerID uuid.UUID, conceptID string) (*domain.LearningRecord, error)
	PutRecord(ctx context.Context, record domain.LearningRecord) error
	QueryRecordsDueBy(ctx context.Context, learnerID uuid.UUID, before time.Time) ([]domain.LearningRecord, error)
	QueryAllRecords(ctx context.Context, learnerID uuid.UUID) ([]domain.LearningRecord, error)
}

type conceptSource interface {
	ListConceptsInNotebook(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error)
}

type sessionStore interface {
	CreateSession(ctx context.Context, session *domain.StudySession) error
	UpdateSession(ctx context.Context, learnerID, sessionID uuid.UUID, patch domain.SessionPatch) error
	ListSessions(ctx context.Context, learnerID uuid.UUID, limit, offset int) ([]domain.StudySession, int, error)
	GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.StudySession, error)
}

type streakToucher interface {
	Touch(ctx context.Context, learnerID uuid.UUID) (domain.StreakRecord, error)
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the tunables of the study engine.
type Config struct {
	SRS              sm2.Params
	NewLimit         int
	QuizLimit        int
	StreakMinReviews int
	// MaxRetryPasses bounds the number of retry passes per session. Zero means unlimited.
	MaxRetryPasses int
	IdleTimeout    time.Duration
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		SRS:              sm2.DefaultParams(),
		NewLimit:         20,
		QuizLimit:        20,
		StreakMinReviews: 5,
		MaxRetryPasses:   3,
		IdleTimeout:      30 * time.Minute,
	}
}

// Option customizes a Service.
type Option func(*Service)

// WithReorderer replaces the default shuffle applied to every selected queue.
func WithReorderer(r Reorderer) Option {
	return func(s *Service) { s.order = r }
}

// WithClock replaces the wall clock.
func WithClock(c clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithRand replaces the random source used by the selection strategies.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// Service implements concept selection, study sessions and notebook stats.
type Service struct {
	records  recordStore
	concepts conceptSource
	sessions sessionStore
	streaks  streakToucher
	log      *slog.Logger
	cfg      Config

	clock clock
	order Reorderer

	rngMu sync.Mutex
	rng   *rand.Rand

	active *registry
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	records recordStore,
	concepts conceptSource,
	sessions sessionStore,
	streaks streakToucher,
	cfg Config,
	opts ...Option,
) *Service {
	s := &Service{
		records:  records,
		concepts: concepts,
		sessions: sessions,
		streaks:  streaks,
		log:      log.With("service", "study"),
		cfg:      cfg,
		clock:    systemClock{},
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		active:   newRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.order == nil {
		s.order = NewShuffleOrder(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	return s
}

// shuffle permutes concepts in place using the service's random source.
func (s *Service) shuffle(concepts []domain.Concept) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng.Shuffle(len(concepts), func(i, j int) {
		concepts[i], concepts[j] = concepts[j], concepts[i]
	})
}
