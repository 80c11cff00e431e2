package streak

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

var _ streakRepo = &streakRepoMock{}

type streakRepoMock struct {
	GetStreakFunc          func(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error)
	GetStreakForUpdateFunc func(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error)
	PutStreakFunc          func(ctx context.Context, record domain.StreakRecord) error

	calls struct {
		GetStreak []struct {
			LearnerID uuid.UUID
		}
		GetStreakForUpdate []struct {
			LearnerID uuid.UUID
		}
		PutStreak []struct {
			Record domain.StreakRecord
		}
	}
	lockGetStreak          sync.RWMutex
	lockGetStreakForUpdate sync.RWMutex
	lockPutStreak          sync.RWMutex
}

func (mock *streakRepoMock) GetStreak(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error) {
	if mock.GetStreakFunc == nil {
		panic("streakRepoMock.GetStreakFunc: method is nil but streakRepo.GetStreak was just called")
	}
	mock.lockGetStreak.Lock()
	mock.calls.GetStreak = append(mock.calls.GetStreak, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lockGetStreak.Unlock()
	return mock.GetStreakFunc(ctx, learnerID)
}

func (mock *streakRepoMock) GetStreakCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lockGetStreak.RLock()
	defer mock.lockGetStreak.RUnlock()
	return mock.calls.GetStreak
}

func (mock *streakRepoMock) PutStreak(ctx context.Context, record domain.StreakRecord) error {
	if mock.PutStreakFunc == nil {
		panic("streakRepoMock.PutStreakFunc: method is nil but streakRepo.PutStreak was just called")
	}
	mock.lockPutStreak.Lock()
	mock.calls.PutStreak = append(mock.calls.PutStreak, struct {
		Record domain.StreakRecord
	}{record})
	mock.lockPutStreak.Unlock()
	return mock.PutStreakFunc(ctx, record)
}

func (mock *streakRepoMock) PutStreakCalls() []struct {
	Record domain.StreakRecord
} {
	mock.lockPutStreak.RLock()
	defer mock.lockPutStreak.RUnlock()
	return mock.calls.PutStreak
}

func (mock *streakRepoMock) GetStreakForUpdate(ctx context.Context, learnerID uuid.UUID) (*domain.StreakRecord, error) {
	if mock.GetStreakForUpdateFunc == nil {
		panic("streakRepoMock.GetStreakForUpdateFunc: method is nil but streakRepo.GetStreakForUpdate was just called")
	}
	mock.lockGetStreakForUpdate.Lock()
	mock.calls.GetStreakForUpdate = append(mock.calls.GetStreakForUpdate, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lockGetStreakForUpdate.Unlock()
	return mock.GetStreakForUpdateFunc(ctx, learnerID)
}

func (mock *streakRepoMock) GetStreakForUpdateCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lockGetStreakForUpdate.RLock()
	defer mock.lockGetStreakForUpdate.RUnlock()
	return mock.calls.GetStreakForUpdate
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Fn func(context.Context) error
	}{fn})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(context.Context) error
} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
