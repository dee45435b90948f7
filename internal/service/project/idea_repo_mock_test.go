package project

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Idea, error)
	UpdateStatusFunc     func(ctx context.Context, id int64, to domain.IdeaStatus, from ...domain.IdeaStatus) (*domain.Idea, error)

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateStatus []struct {
			Ctx  context.Context
			ID   int64
			To   domain.IdeaStatus
			From []domain.IdeaStatus
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateStatus     sync.RWMutex
}

func (mock *ideaRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Idea, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("ideaRepoMock.GetByIDForUpdateFunc: method is nil but ideaRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *ideaRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) UpdateStatus(ctx context.Context, id int64, to domain.IdeaStatus, from ...domain.IdeaStatus) (*domain.Idea, error) {
	if mock.UpdateStatusFunc == nil {
		panic("ideaRepoMock.UpdateStatusFunc: method is nil but ideaRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		To   domain.IdeaStatus
		From []domain.IdeaStatus
	}{
		Ctx:  ctx,
		ID:   id,
		To:   to,
		From: from,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, to, from...)
}

func (mock *ideaRepoMock) UpdateStatusCalls() []struct {
	Ctx  context.Context
	ID   int64
	To   domain.IdeaStatus
	From []domain.IdeaStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
