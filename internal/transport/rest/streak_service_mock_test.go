package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

var _ streakService = &streakServiceMock{}

type streakServiceMock struct {
	GetStreakFunc func(ctx context.Context) (*domain.StreakRecord, error)

	calls struct {
		GetStreak []struct {
			Ctx context.Context
		}
	}
	lockGetStreak sync.RWMutex
}

func (mock *streakServiceMock) GetStreak(ctx context.Context) (*domain.StreakRecord, error) {
	if mock.GetStreakFunc == nil {
		panic("streakServiceMock.GetStreakFunc: method is nil but streakService.GetStreak was just called")
	}
	mock.lockGetStreak.Lock()
	mock.calls.GetStreak = append(mock.calls.GetStreak, struct {
		Ctx context.Context
	}{ctx})
	mock.lockGetStreak.Unlock()
	return mock.GetStreakFunc(ctx)
}

func (mock *streakServiceMock) GetStreakCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStreak.RLock()
	defer mock.lockGetStreak.RUnlock()
	return mock.calls.GetStreak
}
