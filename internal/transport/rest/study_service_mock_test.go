package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	StartSessionFunc           func(ctx context.Context, input study.StartSessionInput) (*study.SessionSnapshot, error)
	CurrentSessionFunc         func(ctx context.Context, sessionID uuid.UUID) (*study.SessionSnapshot, error)
	RecordAnswerFunc           func(ctx context.Context, input study.RecordAnswerInput) (*study.AnswerResult, error)
	CompleteSessionFunc        func(ctx context.Context, sessionID uuid.UUID) (*study.SessionSnapshot, error)
	ListSessionsFunc           func(ctx context.Context, input study.ListSessionsInput) ([]domain.StudySession, int, error)
	GetStatsFunc               func(ctx context.Context, notebookID uuid.UUID) (*domain.NotebookStats, error)
	GetDueCountFunc            func(ctx context.Context, notebookID uuid.UUID) (int, error)
	GetNextRecommendedDateFunc func(ctx context.Context, notebookID uuid.UUID) (time.Time, error)

	calls struct {
		StartSession []struct {
			Input study.StartSessionInput
		}
		CurrentSession []struct {
			SessionID uuid.UUID
		}
		RecordAnswer []struct {
			Input study.RecordAnswerInput
		}
		CompleteSession []struct {
			SessionID uuid.UUID
		}
		ListSessions []struct {
			Input study.ListSessionsInput
		}
		GetStats []struct {
			NotebookID uuid.UUID
		}
		GetDueCount []struct {
			NotebookID uuid.UUID
		}
		GetNextRecommendedDate []struct {
			NotebookID uuid.UUID
		}
	}
	lockStartSession           sync.RWMutex
	lockCurrentSession         sync.RWMutex
	lockRecordAnswer           sync.RWMutex
	lockCompleteSession        sync.RWMutex
	lockListSessions           sync.RWMutex
	lockGetStats               sync.RWMutex
	lockGetDueCount            sync.RWMutex
	lockGetNextRecommendedDate sync.RWMutex
}

func (mock *studyServiceMock) StartSession(ctx context.Context, input study.StartSessionInput) (*study.SessionSnapshot, error) {
	if mock.StartSessionFunc == nil {
		panic("studyServiceMock.StartSessionFunc: method is nil but studyService.StartSession was just called")
	}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, struct {
		Input study.StartSessionInput
	}{input})
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, input)
}

func (mock *studyServiceMock) StartSessionCalls() []struct {
	Input study.StartSessionInput
} {
	mock.lockStartSession.RLock()
	defer mock.lockStartSession.RUnlock()
	return mock.calls.StartSession
}

func (mock *studyServiceMock) CurrentSession(ctx context.Context, sessionID uuid.UUID) (*study.SessionSnapshot, error) {
	if mock.CurrentSessionFunc == nil {
		panic("studyServiceMock.CurrentSessionFunc: method is nil but studyService.CurrentSession was just called")
	}
	mock.lockCurrentSession.Lock()
	mock.calls.CurrentSession = append(mock.calls.CurrentSession, struct {
		SessionID uuid.UUID
	}{sessionID})
	mock.lockCurrentSession.Unlock()
	return mock.CurrentSessionFunc(ctx, sessionID)
}

func (mock *studyServiceMock) CurrentSessionCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockCurrentSession.RLock()
	defer mock.lockCurrentSession.RUnlock()
	return mock.calls.CurrentSession
}

func (mock *studyServiceMock) RecordAnswer(ctx context.Context, input study.RecordAnswerInput) (*study.AnswerResult, error) {
	if mock.RecordAnswerFunc == nil {
		panic("studyServiceMock.RecordAnswerFunc: method is nil but studyService.RecordAnswer was just called")
	}
	mock.lockRecordAnswer.Lock()
	mock.calls.RecordAnswer = append(mock.calls.RecordAnswer, struct {
		Input study.RecordAnswerInput
	}{input})
	mock.lockRecordAnswer.Unlock()
	return mock.RecordAnswerFunc(ctx, input)
}

func (mock *studyServiceMock) RecordAnswerCalls() []struct {
	Input study.RecordAnswerInput
} {
	mock.lockRecordAnswer.RLock()
	defer mock.lockRecordAnswer.RUnlock()
	return mock.calls.RecordAnswer
}

func (mock *studyServiceMock) CompleteSession(ctx context.Context, sessionID uuid.UUID) (*study.SessionSnapshot, error) {
	if mock.CompleteSessionFunc == nil {
		panic("studyServiceMock.CompleteSessionFunc: method is nil but studyService.CompleteSession was just called")
	}
	mock.lockCompleteSession.Lock()
	mock.calls.CompleteSession = append(mock.calls.CompleteSession, struct {
		SessionID uuid.UUID
	}{sessionID})
	mock.lockCompleteSession.Unlock()
	return mock.CompleteSessionFunc(ctx, sessionID)
}

func (mock *studyServiceMock) CompleteSessionCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockCompleteSession.RLock()
	defer mock.lockCompleteSession.RUnlock()
	return mock.calls.CompleteSession
}

func (mock *studyServiceMock) ListSessions(ctx context.Context, input study.ListSessionsInput) ([]domain.StudySession, int, error) {
	if mock.ListSessionsFunc == nil {
		panic("studyServiceMock.ListSessionsFunc: method is nil but studyService.ListSessions was just called")
	}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, struct {
		Input study.ListSessionsInput
	}{input})
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, input)
}

func (mock *studyServiceMock) ListSessionsCalls() []struct {
	Input study.ListSessionsInput
} {
	mock.lockListSessions.RLock()
	defer mock.lockListSessions.RUnlock()
	return mock.calls.ListSessions
}

func (mock *studyServiceMock) GetStats(ctx context.Context, notebookID uuid.UUID) (*domain.NotebookStats, error) {
	if mock.GetStatsFunc == nil {
		panic("studyServiceMock.GetStatsFunc: method is nil but studyService.GetStats was just called")
	}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, struct {
		NotebookID uuid.UUID
	}{notebookID})
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx, notebookID)
}

func (mock *studyServiceMock) GetStatsCalls() []struct {
	NotebookID uuid.UUID
} {
	mock.lockGetStats.RLock()
	defer mock.lockGetStats.RUnlock()
	return mock.calls.GetStats
}

func (mock *studyServiceMock) GetDueCount(ctx context.Context, notebookID uuid.UUID) (int, error) {
	if mock.GetDueCountFunc == nil {
		panic("studyServiceMock.GetDueCountFunc: method is nil but studyService.GetDueCount was just called")
	}
	mock.lockGetDueCount.Lock()
	mock.calls.GetDueCount = append(mock.calls.GetDueCount, struct {
		NotebookID uuid.UUID
	}{notebookID})
	mock.lockGetDueCount.Unlock()
	return mock.GetDueCountFunc(ctx, notebookID)
}

func (mock *studyServiceMock) GetDueCountCalls() []struct {
	NotebookID uuid.UUID
} {
	mock.lockGetDueCount.RLock()
	defer mock.lockGetDueCount.RUnlock()
	return mock.calls.GetDueCount
}

func (mock *studyServiceMock) GetNextRecommendedDate(ctx context.Context, notebookID uuid.UUID) (time.Time, error) {
	if mock.GetNextRecommendedDateFunc == nil {
		panic("studyServiceMock.GetNextRecommendedDateFunc: method is nil but studyService.GetNextRecommendedDate was just called")
	}
	mock.lockGetNextRecommendedDate.Lock()
	mock.calls.GetNextRecommendedDate = append(mock.calls.GetNextRecommendedDate, struct {
		NotebookID uuid.UUID
	}{notebookID})
	mock.lockGetNextRecommendedDate.Unlock()
	return mock.GetNextRecommendedDateFunc(ctx, notebookID)
}

func (mock *studyServiceMock) GetNextRecommendedDateCalls() []struct {
	NotebookID uuid.UUID
} {
	mock.lockGetNextRecommendedDate.RLock()
	defer mock.lockGetNextRecommendedDate.RUnlock()
	return mock.calls.GetNextRecommendedDate
}
