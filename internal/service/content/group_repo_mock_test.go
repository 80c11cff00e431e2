package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	CreateGroupFunc func(ctx context.Context, group domain.ConceptGroup) error
	ListGroupsFunc  func(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error)

	calls struct {
		CreateGroup []struct {
			Group domain.ConceptGroup
		}
		ListGroups []struct {
			NotebookID uuid.UUID
		}
	}
	lockCreateGroup sync.RWMutex
	lockListGroups  sync.RWMutex
}

func (mock *groupRepoMock) CreateGroup(ctx context.Context, group domain.ConceptGroup) error {
	if mock.CreateGroupFunc == nil {
		panic("groupRepoMock.CreateGroupFunc: method is nil but groupRepo.CreateGroup was just called")
	}
	mock.lockCreateGroup.Lock()
	mock.calls.CreateGroup = append(mock.calls.CreateGroup, struct {
		Group domain.ConceptGroup
	}{group})
	mock.lockCreateGroup.Unlock()
	return mock.CreateGroupFunc(ctx, group)
}

func (mock *groupRepoMock) CreateGroupCalls() []struct {
	Group domain.ConceptGroup
} {
	mock.lockCreateGroup.RLock()
	defer mock.lockCreateGroup.RUnlock()
	return mock.calls.CreateGroup
}

func (mock *groupRepoMock) ListGroups(ctx context.Context, notebookID uuid.UUID) ([]domain.ConceptGroup, error) {
	if mock.ListGroupsFunc == nil {
		panic("groupRepoMock.ListGroupsFunc: method is nil but groupRepo.ListGroups was just called")
	}
	mock.lockListGroups.Lock()
	mock.calls.ListGroups = append(mock.calls.ListGroups, struct {
		NotebookID uuid.UUID
	}{notebookID})
	mock.lockListGroups.Unlock()
	return mock.ListGroupsFunc(ctx, notebookID)
}

func (mock *groupRepoMock) ListGroupsCalls() []struct {
	NotebookID uuid.UUID
} {
	mock.lockListGroups.RLock()
	defer mock.lockListGroups.RUnlock()
	return mock.calls.ListGroups
}

type invalidationRecorder struct {
	mu        sync.Mutex
	notebooks []uuid.UUID
}

func (r *invalidationRecorder) Invalidate(notebookID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notebooks = append(r.notebooks, notebookID)
}
