package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/thread"
)

var _ threadService = &threadServiceMock{}

type threadServiceMock struct {
	AddFunc        func(ctx context.Context, input thread.AddInput) (*domain.Comment, error)
	LoadThreadFunc func(ctx context.Context, ideaID int64) ([]*domain.CommentNode, error)

	calls struct {
		Add []struct {
			Ctx   context.Context
			Input thread.AddInput
		}
		LoadThread []struct {
			Ctx    context.Context
			IdeaID int64
		}
	}
	lockAdd        sync.RWMutex
	lockLoadThread sync.RWMutex
}

func (mock *threadServiceMock) Add(ctx context.Context, input thread.AddInput) (*domain.Comment, error) {
	if mock.AddFunc == nil {
		panic("threadServiceMock.AddFunc: method is nil but threadService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input thread.AddInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, input)
}

func (mock *threadServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Input thread.AddInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *threadServiceMock) LoadThread(ctx context.Context, ideaID int64) ([]*domain.CommentNode, error) {
	if mock.LoadThreadFunc == nil {
		panic("threadServiceMock.LoadThreadFunc: method is nil but threadService.LoadThread was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID int64
	}{
		Ctx:    ctx,
		IdeaID: ideaID,
	}
	mock.lockLoadThread.Lock()
	mock.calls.LoadThread = append(mock.calls.LoadThread, callInfo)
	mock.lockLoadThread.Unlock()
	return mock.LoadThreadFunc(ctx, ideaID)
}

func (mock *threadServiceMock) LoadThreadCalls() []struct {
	Ctx    context.Context
	IdeaID int64
} {
	mock.lockLoadThread.RLock()
	calls := mock.calls.LoadThread
	mock.lockLoadThread.RUnlock()
	return calls
}
