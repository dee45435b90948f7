package idea

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Member, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockGetByEmail sync.RWMutex
}

func (mock *memberRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if mock.GetByEmailFunc == nil {
		panic("memberRepoMock.GetByEmailFunc: method is nil but memberRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *memberRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}
