package rest

import "net/http"

// Handlers bundles every REST handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Study   *StudyHandler
	Streak  *StreakHandler
	Content *ContentHandler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/notebooks/{notebookID}/sessions", h.Study.StartSession)
	mux.HandleFunc("GET /api/notebooks/{notebookID}/stats", h.Study.GetStats)
	mux.HandleFunc("GET /api/notebooks/{notebookID}/due-count", h.Study.GetDueCount)
	mux.HandleFunc("GET /api/notebooks/{notebookID}/next-review", h.Study.GetNextReview)
	mux.HandleFunc("POST /api/notebooks/{notebookID}/concept-groups", h.Content.IngestGroup)
	mux.HandleFunc("GET /api/notebooks/{notebookID}/concept-groups", h.Content.ListGroups)

	mux.HandleFunc("GET /api/sessions", h.Study.ListSessions)
	mux.HandleFunc("GET /api/sessions/{sessionID}", h.Study.GetSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/answers", h.Study.RecordAnswer)
	mux.HandleFunc("POST /api/sessions/{sessionID}/complete", h.Study.CompleteSession)

	mux.HandleFunc("GET /api/streak", h.Streak.GetStreak)

	return mux
}
