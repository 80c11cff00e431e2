package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type sessionReaper interface {
	ReapIdle(ctx context.Context) int
}

// Reaper periodically completes study sessions that went idle.
type Reaper struct {
	scheduler *gocron.Scheduler
	sessions  sessionReaper
	log       *slog.Logger
}

// NewReaper schedules sessions.ReapIdle every interval. Call Start to run it.
func NewReaper(logger *slog.Logger, sessions sessionReaper, interval time.Duration) (*Reaper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reap interval must be positive, got %s", interval)
	}

	r := &Reaper{
		scheduler: gocron.NewScheduler(time.UTC),
		sessions:  sessions,
		log:       logger.With("component", "reaper"),
	}
	r.scheduler.SingletonModeAll()

	if _, err := r.scheduler.Every(interval).WaitForSchedule().Do(r.run); err != nil {
		return nil, fmt.Errorf("schedule reaper: %w", err)
	}
	return r, nil
}

// Start runs the schedule in the background.
func (r *Reaper) Start() {
	r.scheduler.StartAsync()
}

// Stop halts the schedule and waits for a running pass to finish.
func (r *Reaper) Stop() {
	r.scheduler.Stop()
}

func (r *Reaper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if n := r.sessions.ReapIdle(ctx); n > 0 {
		r.log.Debug("reaper pass", slog.Int("completed", n))
	}
}
