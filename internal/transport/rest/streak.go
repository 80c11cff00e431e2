package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

type streakService interface {
	GetStreak(ctx context.Context) (*domain.StreakRecord, error)
}

// StreakHandler serves the learner's streak.
type StreakHandler struct {
	svc streakService
	log *slog.Logger
}

// NewStreakHandler creates a StreakHandler.
func NewStreakHandler(svc streakService, logger *slog.Logger) *StreakHandler {
	return &StreakHandler{svc: svc, log: logger.With("handler", "streak")}
}

// GetStreak handles GET /api/streak.
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetStreak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStreakResponse(*rec))
}
