package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/content"
)

var _ contentService = &contentServiceMock{}

type contentServiceMock struct {
	IngestGroupFunc func(ctx context.Context, input content.IngestGroupInput) (*domain.ConceptGroup, error)
	ListGroupsFunc  func(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error)

	calls struct {
		IngestGroup []struct {
			Input content.IngestGroupInput
		}
		ListGroups []struct {
			NotebookID uuid.UUID
		}
	}
	lockIngestGroup sync.RWMutex
	lockListGroups  sync.RWMutex
}

func (mock *contentServiceMock) IngestGroup(ctx context.Context, input content.IngestGroupInput) (*domain.ConceptGroup, error) {
	if mock.IngestGroupFunc == nil {
		panic("contentServiceMock.IngestGroupFunc: method is nil but contentService.IngestGroup was just called")
	}
	mock.lockIngestGroup.Lock()
	mock.calls.IngestGroup = append(mock.calls.IngestGroup, struct {
		Input content.IngestGroupInput
	}{input})
	mock.lockIngestGroup.Unlock()
	return mock.IngestGroupFunc(ctx, input)
}

func (mock *contentServiceMock) IngestGroupCalls() []struct {
	Input content.IngestGroupInput
} {
	mock.lockIngestGroup.RLock()
	defer mock.lockIngestGroup.RUnlock()
	return mock.calls.IngestGroup
}

func (mock *contentServiceMock) ListGroups(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error) {
	if mock.ListGroupsFunc == nil {
		panic("contentServiceMock.ListGroupsFunc: method is nil but contentService.ListGroups was just called")
	}
	mock.lockListGroups.Lock()
	mock.calls.ListGroups = append(mock.calls.ListGroups, struct {
		NotebookID uuid.UUID
	}{notebookID})
	mock.lockListGroups.Unlock()
	return mock.ListGroupsFunc(ctx, notebookID)
}

func (mock *contentServiceMock) ListGroupsCalls() []struct {
	NotebookID uuid.UUID
} {
	mock.lockListGroups.RLock()
	defer mock.lockListGroups.RUnlock()
	return mock.calls.ListGroups
}
