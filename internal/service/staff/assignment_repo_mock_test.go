package staff

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	CreateFunc       func(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
	ListByOfficeFunc func(ctx context.Context, officeID int64) ([]domain.StaffAssignment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Assignment
		}
		ListByOffice []struct {
			Ctx      context.Context
			OfficeID int64
		}
	}
	lockCreate       sync.RWMutex
	lockListByOffice sync.RWMutex
}

func (mock *assignmentRepoMock) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	if mock.CreateFunc == nil {
		panic("assignmentRepoMock.CreateFunc: method is nil but assignmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Assignment
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *assignmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Assignment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) ListByOffice(ctx context.Context, officeID int64) ([]domain.StaffAssignment, error) {
	if mock.ListByOfficeFunc == nil {
		panic("assignmentRepoMock.ListByOfficeFunc: method is nil but assignmentRepo.ListByOffice was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OfficeID int64
	}{
		Ctx:      ctx,
		OfficeID: officeID,
	}
	mock.lockListByOffice.Lock()
	mock.calls.ListByOffice = append(mock.calls.ListByOffice, callInfo)
	mock.lockListByOffice.Unlock()
	return mock.ListByOfficeFunc(ctx, officeID)
}

func (mock *assignmentRepoMock) ListByOfficeCalls() []struct {
	Ctx      context.Context
	OfficeID int64
} {
	mock.lockListByOffice.RLock()
	calls := mock.calls.ListByOffice
	mock.lockListByOffice.RUnlock()
	return calls
}
