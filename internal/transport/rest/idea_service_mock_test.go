package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/idea"
)

var _ ideaService = &ideaServiceMock{}

type ideaServiceMock struct {
	ApproveProjectFunc func(ctx context.Context, input idea.ApproveInput) (*domain.Idea, error)
	ListByMemberFunc   func(ctx context.Context, email string) ([]domain.IdeaView, error)
	ListPublishedFunc  func(ctx context.Context) ([]domain.IdeaView, error)
	PublishFunc        func(ctx context.Context, ideaID int64) (*domain.Idea, error)
	SubmitFunc         func(ctx context.Context, input idea.SubmitInput) (*domain.Idea, error)

	calls struct {
		ApproveProject []struct {
			Ctx   context.Context
			Input idea.ApproveInput
		}
		ListByMember []struct {
			Ctx   context.Context
			Email string
		}
		ListPublished []struct{ Ctx context.Context }
		Publish []struct {
			Ctx    context.Context
			IdeaID int64
		}
		Submit []struct {
			Ctx   context.Context
			Input idea.SubmitInput
		}
	}
	lockApproveProject sync.RWMutex
	lockListByMember   sync.RWMutex
	lockListPublished  sync.RWMutex
	lockPublish        sync.RWMutex
	lockSubmit         sync.RWMutex
}

func (mock *ideaServiceMock) ApproveProject(ctx context.Context, input idea.ApproveInput) (*domain.Idea, error) {
	if mock.ApproveProjectFunc == nil {
		panic("ideaServiceMock.ApproveProjectFunc: method is nil but ideaService.ApproveProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input idea.ApproveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockApproveProject.Lock()
	mock.calls.ApproveProject = append(mock.calls.ApproveProject, callInfo)
	mock.lockApproveProject.Unlock()
	return mock.ApproveProjectFunc(ctx, input)
}

func (mock *ideaServiceMock) ApproveProjectCalls() []struct {
	Ctx   context.Context
	Input idea.ApproveInput
} {
	mock.lockApproveProject.RLock()
	calls := mock.calls.ApproveProject
	mock.lockApproveProject.RUnlock()
	return calls
}

func (mock *ideaServiceMock) ListByMember(ctx context.Context, email string) ([]domain.IdeaView, error) {
	if mock.ListByMemberFunc == nil {
		panic("ideaServiceMock.ListByMemberFunc: method is nil but ideaService.ListByMember was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockListByMember.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, callInfo)
	mock.lockListByMember.Unlock()
	return mock.ListByMemberFunc(ctx, email)
}

func (mock *ideaServiceMock) ListByMemberCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockListByMember.RLock()
	calls := mock.calls.ListByMember
	mock.lockListByMember.RUnlock()
	return calls
}

func (mock *ideaServiceMock) ListPublished(ctx context.Context) ([]domain.IdeaView, error) {
	if mock.ListPublishedFunc == nil {
		panic("ideaServiceMock.ListPublishedFunc: method is nil but ideaService.ListPublished was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListPublished.Lock()
	mock.calls.ListPublished = append(mock.calls.ListPublished, callInfo)
	mock.lockListPublished.Unlock()
	return mock.ListPublishedFunc(ctx)
}

func (mock *ideaServiceMock) ListPublishedCalls() []struct{ Ctx context.Context } {
	mock.lockListPublished.RLock()
	calls := mock.calls.ListPublished
	mock.lockListPublished.RUnlock()
	return calls
}

func (mock *ideaServiceMock) Publish(ctx context.Context, ideaID int64) (*domain.Idea, error) {
	if mock.PublishFunc == nil {
		panic("ideaServiceMock.PublishFunc: method is nil but ideaService.Publish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID int64
	}{
		Ctx:    ctx,
		IdeaID: ideaID,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, ideaID)
}

func (mock *ideaServiceMock) PublishCalls() []struct {
	Ctx    context.Context
	IdeaID int64
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

func (mock *ideaServiceMock) Submit(ctx context.Context, input idea.SubmitInput) (*domain.Idea, error) {
	if mock.SubmitFunc == nil {
		panic("ideaServiceMock.SubmitFunc: method is nil but ideaService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input idea.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *ideaServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input idea.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
