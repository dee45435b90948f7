package thread

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Comment, error)
	ListByIdeaFunc func(ctx context.Context, ideaID int64) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByIdea []struct {
			Ctx    context.Context
			IdeaID int64
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByIdea sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
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

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByIdea(ctx context.Context, ideaID int64) ([]domain.Comment, error) {
	if mock.ListByIdeaFunc == nil {
		panic("commentRepoMock.ListByIdeaFunc: method is nil but commentRepo.ListByIdea was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID int64
	}{
		Ctx:    ctx,
		IdeaID: ideaID,
	}
	mock.lockListByIdea.Lock()
	mock.calls.ListByIdea = append(mock.calls.ListByIdea, callInfo)
	mock.lockListByIdea.Unlock()
	return mock.ListByIdeaFunc(ctx, ideaID)
}

func (mock *commentRepoMock) ListByIdeaCalls() []struct {
	Ctx    context.Context
	IdeaID int64
} {
	mock.lockListByIdea.RLock()
	calls := mock.calls.ListByIdea
	mock.lockListByIdea.RUnlock()
	return calls
}
