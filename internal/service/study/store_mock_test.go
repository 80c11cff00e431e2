package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

var (
	_ recordStore   = &recordStoreMock{}
	_ conceptSource = &conceptSourceMock{}
	_ sessionStore  = &sessionStoreMock{}
	_ streakToucher = &streakToucherMock{}
)

type recordStoreMock struct {
	GetRecordFunc         func(ctx context.Context, learnerID uuid.UUID, conceptID string) (*domain.LearningRecord, error)
	PutRecordFunc         func(ctx context.Context, record domain.LearningRecord) error
	QueryRecordsDueByFunc func(ctx context.Context, learnerID uuid.UUID, before time.Time) ([]domain.LearningRecord, error)
	QueryAllRecordsFunc   func(ctx context.Context, learnerID uuid.UUID) ([]domain.LearningRecord, error)

	calls struct {
		GetRecord []struct {
			LearnerID uuid.UUID
			ConceptID string
		}
		PutRecord []struct {
			Record domain.LearningRecord
		}
		QueryRecordsDueBy []struct {
			LearnerID uuid.UUID
			Before    time.Time
		}
		QueryAllRecords []struct {
			LearnerID uuid.UUID
		}
	}
	lockGetRecord         sync.RWMutex
	lockPutRecord         sync.RWMutex
	lockQueryRecordsDueBy sync.RWMutex
	lockQueryAllRecords   sync.RWMutex
}

func (mock *recordStoreMock) GetRecord(ctx context.Context, learnerID uuid.UUID, conceptID string) (*domain.LearningRecord, error) {
	if mock.GetRecordFunc == nil {
		panic("recordStoreMock.GetRecordFunc: method is nil but recordStore.GetRecord was just called")
	}
	mock.lockGetRecord.Lock()
	mock.calls.GetRecord = append(mock.calls.GetRecord, struct {
		LearnerID uuid.UUID
		ConceptID string
	}{learnerID, conceptID})
	mock.lockGetRecord.Unlock()
	return mock.GetRecordFunc(ctx, learnerID, conceptID)
}

func (mock *recordStoreMock) GetRecordCalls() []struct {
	LearnerID uuid.UUID
	ConceptID string
} {
	mock.lockGetRecord.RLock()
	defer mock.lockGetRecord.RUnlock()
	return mock.calls.GetRecord
}

func (mock *recordStoreMock) PutRecord(ctx context.Context, record domain.LearningRecord) error {
	if mock.PutRecordFunc == nil {
		panic("recordStoreMock.PutRecordFunc: method is nil but recordStore.PutRecord was just called")
	}
	mock.lockPutRecord.Lock()
	mock.calls.PutRecord = append(mock.calls.PutRecord, struct {
		Record domain.LearningRecord
	}{record})
	mock.lockPutRecord.Unlock()
	return mock.PutRecordFunc(ctx, record)
}

func (mock *recordStoreMock) PutRecordCalls() []struct {
	Record domain.LearningRecord
} {
	mock.lockPutRecord.RLock()
	defer mock.lockPutRecord.RUnlock()
	return mock.calls.PutRecord
}

func (mock *recordStoreMock) QueryRecordsDueBy(ctx context.Context, learnerID uuid.UUID, before time.Time) ([]domain.LearningRecord, error) {
	if mock.QueryRecordsDueByFunc == nil {
		panic("recordStoreMock.QueryRecordsDueByFunc: method is nil but recordStore.QueryRecordsDueBy was just called")
	}
	mock.lockQueryRecordsDueBy.Lock()
	mock.calls.QueryRecordsDueBy = append(mock.calls.QueryRecordsDueBy, struct {
		LearnerID uuid.UUID
		Before    time.Time
	}{learnerID, before})
	mock.lockQueryRecordsDueBy.Unlock()
	return mock.QueryRecordsDueByFunc(ctx, learnerID, before)
}

func (mock *recordStoreMock) QueryRecordsDueByCalls() []struct {
	LearnerID uuid.UUID
	Before    time.Time
} {
	mock.lockQueryRecordsDueBy.RLock()
	defer mock.lockQueryRecordsDueBy.RUnlock()
	return mock.calls.QueryRecordsDueBy
}

func (mock *recordStoreMock) QueryAllRecords(ctx context.Context, learnerID uuid.UUID) ([]domain.LearningRecord, error) {
	if mock.QueryAllRecordsFunc == nil {
		panic("recordStoreMock.QueryAllRecordsFunc: method is nil but recordStore.QueryAllRecords was just called")
	}
	mock.lockQueryAllRecords.Lock()
	mock.calls.QueryAllRecords = append(mock.calls.QueryAllRecords, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lockQueryAllRecords.Unlock()
	return mock.QueryAllRecordsFunc(ctx, learnerID)
}

func (mock *recordStoreMock) QueryAllRecordsCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lockQueryAllRecords.RLock()
	defer mock.lockQueryAllRecords.RUnlock()
	return mock.calls.QueryAllRecords
}

type conceptSourceMock struct {
	ListConceptsInNotebookFunc func(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error)

	calls struct {
		ListConceptsInNotebook []struct {
			NotebookID uuid.UUID
		}
	}
	lockListConceptsInNotebook sync.RWMutex
}

func (mock *conceptSourceMock) ListConceptsInNotebook(ctx context.Context, notebookID uuid.UUID) ([]domain.Concept, error) {
	if mock.ListConceptsInNotebookFunc == nil {
		panic("conceptSourceMock.ListConceptsInNotebookFunc: method is nil but conceptSource.ListConceptsInNotebook was just called")
	}
	mock.lockListConceptsInNotebook.Lock()
	mock.calls.ListConceptsInNotebook = append(mock.calls.ListConceptsInNotebook, struct {
		NotebookID uuid.UUID
	}{notebookID})
	mock.lockListConceptsInNotebook.Unlock()
	return mock.ListConceptsInNotebookFunc(ctx, notebookID)
}

func (mock *conceptSourceMock) ListConceptsInNotebookCalls() []struct {
	NotebookID uuid.UUID
} {
	mock.lockListConceptsInNotebook.RLock()
	defer mock.lockListConceptsInNotebook.RUnlock()
	return mock.calls.ListConceptsInNotebook
}

type sessionStoreMock struct {
	CreateSessionFunc func(ctx context.Context, session *domain.StudySession) error
	UpdateSessionFunc func(ctx context.Context, learnerID, sessionID uuid.UUID, patch domain.SessionPatch) error
	ListSessionsFunc  func(ctx context.Context, learnerID uuid.UUID, limit, offset int) ([]domain.StudySession, int, error)
	GetSessionFunc    func(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.StudySession, error)

	calls struct {
		GetSession []struct {
			LearnerID uuid.UUID
			SessionID uuid.UUID
		}
		CreateSession []struct {
			Session domain.StudySession
		}
		UpdateSession []struct {
			LearnerID uuid.UUID
			SessionID uuid.UUID
			Patch     domain.SessionPatch
		}
		ListSessions []struct {
			LearnerID uuid.UUID
			Limit     int
			Offset    int
		}
	}
	lockCreateSession sync.RWMutex
	lockUpdateSession sync.RWMutex
	lockListSessions  sync.RWMutex
	lockGetSession    sync.RWMutex
}

func (mock *sessionStoreMock) GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.StudySession, error) {
	if mock.GetSessionFunc == nil {
		panic("sessionStoreMock.GetSessionFunc: method is nil but sessionStore.GetSession was just called")
	}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, struct {
		LearnerID uuid.UUID
		SessionID uuid.UUID
	}{learnerID, sessionID})
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, learnerID, sessionID)
}

func (mock *sessionStoreMock) GetSessionCalls() []struct {
	LearnerID uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetSession.RLock()
	defer mock.lockGetSession.RUnlock()
	return mock.calls.GetSession
}

func (mock *sessionStoreMock) CreateSession(ctx context.Context, session *domain.StudySession) error {
	if mock.CreateSessionFunc == nil {
		panic("sessionStoreMock.CreateSessionFunc: method is nil but sessionStore.CreateSession was just called")
	}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, struct {
		Session domain.StudySession
	}{*session})
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, session)
}

func (mock *sessionStoreMock) CreateSessionCalls() []struct {
	Session domain.StudySession
} {
	mock.lockCreateSession.RLock()
	defer mock.lockCreateSession.RUnlock()
	return mock.calls.CreateSession
}

func (mock *sessionStoreMock) UpdateSession(ctx context.Context, learnerID, sessionID uuid.UUID, patch domain.SessionPatch) error {
	if mock.UpdateSessionFunc == nil {
		panic("sessionStoreMock.UpdateSessionFunc: method is nil but sessionStore.UpdateSession was just called")
	}
	mock.lockUpdateSession.Lock()
	mock.calls.UpdateSession = append(mock.calls.UpdateSession, struct {
		LearnerID uuid.UUID
		SessionID uuid.UUID
		Patch     domain.SessionPatch
	}{learnerID, sessionID, patch})
	mock.lockUpdateSession.Unlock()
	return mock.UpdateSessionFunc(ctx, learnerID, sessionID, patch)
}

func (mock *sessionStoreMock) UpdateSessionCalls() []struct {
	LearnerID uuid.UUID
	SessionID uuid.UUID
	Patch     domain.SessionPatch
} {
	mock.lockUpdateSession.RLock()
	defer mock.lockUpdateSession.RUnlock()
	return mock.calls.UpdateSession
}

func (mock *sessionStoreMock) ListSessions(ctx context.Context, learnerID uuid.UUID, limit, offset int) ([]domain.StudySession, int, error) {
	if mock.ListSessionsFunc == nil {
		panic("sessionStoreMock.ListSessionsFunc: method is nil but sessionStore.ListSessions was just called")
	}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, struct {
		LearnerID uuid.UUID
		Limit     int
		Offset    int
	}{learnerID, limit, offset})
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, learnerID, limit, offset)
}

func (mock *sessionStoreMock) ListSessionsCalls() []struct {
	LearnerID uuid.UUID
	Limit     int
	Offset    int
} {
	mock.lockListSessions.RLock()
	defer mock.lockListSessions.RUnlock()
	return mock.calls.ListSessions
}

type streakToucherMock struct {
	TouchFunc func(ctx context.Context, learnerID uuid.UUID) (domain.StreakRecord, error)

	calls struct {
		Touch []struct {
			LearnerID uuid.UUID
		}
	}
	lockTouch sync.RWMutex
}

func (mock *streakToucherMock) Touch(ctx context.Context, learnerID uuid.UUID) (domain.StreakRecord, error) {
	if mock.TouchFunc == nil {
		panic("streakToucherMock.TouchFunc: method is nil but streakToucher.Touch was just called")
	}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, learnerID)
}

func (mock *streakToucherMock) TouchCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lockTouch.RLock()
	defer mock.lockTouch.RUnlock()
	return mock.calls.Touch
}
