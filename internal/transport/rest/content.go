package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/content"
)

type contentService interface {
	IngestGroup(ctx context.Context, input content.IngestGroupInput) (*domain.ConceptGroup, error)
	ListGroups(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error)
}

// ContentHandler serves concept group ingestion.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type conceptPayloadRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source"`
}

type ingestGroupRequest struct {
	Concepts []conceptPayloadRequest `json:"concepts"`
}

// IngestGroup handles POST /api/notebooks/{notebookID}/concept-groups.
func (h *ContentHandler) IngestGroup(w http.ResponseWriter, r *http.Request) {
	notebookID, ok := pathUUID(w, r, "notebookID")
	if !ok {
		return
	}

	var req ingestGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := content.IngestGroupInput{NotebookID: notebookID}
	for _, c := range req.Concepts {
		input.Concepts = append(input.Concepts, domain.ConceptPayload{
			Term:       c.Term,
			Definition: c.Definition,
			Source:     c.Source,
		})
	}

	group, err := h.svc.IngestGroup(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(*group))
}

// ListGroups handles GET /api/notebooks/{notebookID}/concept-groups.
func (h *ContentHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	notebookID, ok := pathUUID(w, r, "notebookID")
	if !ok {
		return
	}

	groups, err := h.svc.ListGroups(r.Context(), notebookID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, toGroupResponse(g))
	}
	writeJSON(w, http.StatusOK, map[string][]groupResponse{"groups": resp})
}
