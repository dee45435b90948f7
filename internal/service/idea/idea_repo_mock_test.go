package idea

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc       func(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Idea, error)
	ListByAuthorFunc func(ctx context.Context, memberID int64) ([]domain.Idea, error)
	ListByStatusFunc func(ctx context.Context, status domain.IdeaStatus) ([]domain.Idea, error)
	UpdateStatusFunc func(ctx context.Context, id int64, to domain.IdeaStatus, from ...domain.IdeaStatus) (*domain.Idea, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Idea *domain.Idea
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByAuthor []struct {
			Ctx      context.Context
			MemberID int64
		}
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.IdeaStatus
		}
		UpdateStatus []struct {
			Ctx  context.Context
			ID   int64
			To   domain.IdeaStatus
			From []domain.IdeaStatus
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByAuthor sync.RWMutex
	lockListByStatus sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea *domain.Idea
	}{
		Ctx:  ctx,
		Idea: idea,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, idea)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Idea *domain.Idea
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, id int64) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *ideaRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *ideaRepoMock) ListByAuthor(ctx context.Context, memberID int64) ([]domain.Idea, error) {
	if mock.ListByAuthorFunc == nil {
		panic("ideaRepoMock.ListByAuthorFunc: method is nil but ideaRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID int64
	}{
		Ctx:      ctx,
		MemberID: memberID,
	}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, memberID)
}

func (mock *ideaRepoMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	MemberID int64
} {
	mock.lockListByAuthor.RLock()
	calls := mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *ideaRepoMock) ListByStatus(ctx context.Context, status domain.IdeaStatus) ([]domain.Idea, error) {
	if mock.ListByStatusFunc == nil {
		panic("ideaRepoMock.ListByStatusFunc: method is nil but ideaRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.IdeaStatus
	}{
		Ctx:    ctx,
		Status: status,
	}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status)
}

func (mock *ideaRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.IdeaStatus
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
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
