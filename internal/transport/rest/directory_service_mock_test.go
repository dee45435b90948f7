package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ directoryService = &directoryServiceMock{}

type directoryServiceMock struct {
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)

	calls struct {
		ListCategories []struct{ Ctx context.Context }
	}
	lockListCategories sync.RWMutex
}

func (mock *directoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("directoryServiceMock.ListCategoriesFunc: method is nil but directoryService.ListCategories was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *directoryServiceMock) ListCategoriesCalls() []struct{ Ctx context.Context } {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}
