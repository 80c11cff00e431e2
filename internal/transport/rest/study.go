package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (*study.SessionSnapshot, error)
	CurrentSession(ctx context.Context, sessionID uuid.UUID) (*study.SessionSnapshot, error)
	RecordAnswer(ctx context.Context, input study.RecordAnswerInput) (*study.AnswerResult, error)
	CompleteSession(ctx context.Context, sessionID uuid.UUID) (*study.SessionSnapshot, error)
	ListSessions(ctx context.Context, input study.ListSessionsInput) ([]domain.StudySession, int, error)
	GetStats(ctx context.Context, notebookID uuid.UUID) (*domain.NotebookStats, error)
	GetDueCount(ctx context.Context, notebookID uuid.UUID) (int, error)
	GetNextRecommendedDate(ctx context.Context, notebookID uuid.UUID) (time.Time, error)
}

// StudyHandler serves session and statistics endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type startSessionRequest struct {
	Mode string `json:"mode"`
}

type recordAnswerRequest struct {
	ConceptID string `json:"conceptId"`
	Quality   *int   `json:"quality"`
}

// StartSession handles POST /api/notebooks/{notebookID}/sessions.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	notebookID, ok := pathUUID(w, r, "notebookID")
	if !ok {
		return
	}

	var req startSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, err := h.svc.StartSession(r.Context(), study.StartSessionInput{
		NotebookID: notebookID,
		Mode:       domain.SessionMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSnapshotResponse(*snap))
}

// GetSession handles GET /api/sessions/{sessionID}.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "sessionID")
	if !ok {
		return
	}

	snap, err := h.svc.CurrentSession(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(*snap))
}

// RecordAnswer handles POST /api/sessions/{sessionID}/answers.
func (h *StudyHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "sessionID")
	if !ok {
		return
	}

	var req recordAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quality == nil {
		handleError(h.log, w, r, domain.NewValidationError("quality", "required"))
		return
	}

	result, err := h.svc.RecordAnswer(r.Context(), study.RecordAnswerInput{
		SessionID: sessionID,
		ConceptID: req.ConceptID,
		Quality:   domain.Quality(*req.Quality),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnswerResponse(*result))
}

// CompleteSession handles POST /api/sessions/{sessionID}/complete.
// A summary that could not be persisted still returns the sealed session.
func (h *StudyHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "sessionID")
	if !ok {
		return
	}

	snap, err := h.svc.CompleteSession(r.Context(), sessionID)
	if snap == nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, completeResponse{
		Snapshot:         toSnapshotResponse(*snap),
		SummaryPersisted: err == nil,
	})
}

// ListSessions handles GET /api/sessions?limit=&offset=.
func (h *StudyHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	sessions, total, err := h.svc.ListSessions(r.Context(), study.ListSessionsInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := sessionListResponse{Sessions: make([]sessionResponse, 0, len(sessions)), Total: total}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetStats handles GET /api/notebooks/{notebookID}/stats.
func (h *StudyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	notebookID, ok := pathUUID(w, r, "notebookID")
	if !ok {
		return
	}

	stats, err := h.svc.GetStats(r.Context(), notebookID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse(*stats))
}

// GetDueCount handles GET /api/notebooks/{notebookID}/due-count.
func (h *StudyHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	notebookID, ok := pathUUID(w, r, "notebookID")
	if !ok {
		return
	}

	count, err := h.svc.GetDueCount(r.Context(), notebookID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"dueCount": count})
}

// GetNextReview handles GET /api/notebooks/{notebookID}/next-review.
func (h *StudyHandler) GetNextReview(w http.ResponseWriter, r *http.Request) {
	notebookID, ok := pathUUID(w, r, "notebookID")
	if !ok {
		return
	}

	next, err := h.svc.GetNextRecommendedDate(r.Context(), notebookID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]time.Time{"nextReviewDate": next})
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}
