package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/vote"
)

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	CastFunc  func(ctx context.Context, input vote.CastInput) (*domain.Vote, error)
	TallyFunc func(ctx context.Context, ideaID int64) (int, error)

	calls struct {
		Cast []struct {
			Ctx   context.Context
			Input vote.CastInput
		}
		Tally []struct {
			Ctx    context.Context
			IdeaID int64
		}
	}
	lockCast  sync.RWMutex
	lockTally sync.RWMutex
}

func (mock *voteServiceMock) Cast(ctx context.Context, input vote.CastInput) (*domain.Vote, error) {
	if mock.CastFunc == nil {
		panic("voteServiceMock.CastFunc: method is nil but voteService.Cast was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vote.CastInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCast.Lock()
	mock.calls.Cast = append(mock.calls.Cast, callInfo)
	mock.lockCast.Unlock()
	return mock.CastFunc(ctx, input)
}

func (mock *voteServiceMock) CastCalls() []struct {
	Ctx   context.Context
	Input vote.CastInput
} {
	mock.lockCast.RLock()
	calls := mock.calls.Cast
	mock.lockCast.RUnlock()
	return calls
}

func (mock *voteServiceMock) Tally(ctx context.Context, ideaID int64) (int, error) {
	if mock.TallyFunc == nil {
		panic("voteServiceMock.TallyFunc: method is nil but voteService.Tally was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID int64
	}{
		Ctx:    ctx,
		IdeaID: ideaID,
	}
	mock.lockTally.Lock()
	mock.calls.Tally = append(mock.calls.Tally, callInfo)
	mock.lockTally.Unlock()
	return mock.TallyFunc(ctx, ideaID)
}

func (mock *voteServiceMock) TallyCalls() []struct {
	Ctx    context.Context
	IdeaID int64
} {
	mock.lockTally.RLock()
	calls := mock.calls.Tally
	mock.lockTally.RUnlock()
	return calls
}
