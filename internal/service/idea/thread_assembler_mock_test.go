package idea

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ threadAssembler = &threadAssemblerMock{}

type threadAssemblerMock struct {
	AssembleFunc func(ctx context.Context, ideaID int64, comments []domain.Comment) []*domain.CommentNode

	calls struct {
		Assemble []struct {
			Ctx      context.Context
			IdeaID   int64
			Comments []domain.Comment
		}
	}
	lockAssemble sync.RWMutex
}

func (mock *threadAssemblerMock) Assemble(ctx context.Context, ideaID int64, comments []domain.Comment) []*domain.CommentNode {
	if mock.AssembleFunc == nil {
		panic("threadAssemblerMock.AssembleFunc: method is nil but threadAssembler.Assemble was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		IdeaID   int64
		Comments []domain.Comment
	}{
		Ctx:      ctx,
		IdeaID:   ideaID,
		Comments: comments,
	}
	mock.lockAssemble.Lock()
	mock.calls.Assemble = append(mock.calls.Assemble, callInfo)
	mock.lockAssemble.Unlock()
	return mock.AssembleFunc(ctx, ideaID, comments)
}

func (mock *threadAssemblerMock) AssembleCalls() []struct {
	Ctx      context.Context
	IdeaID   int64
	Comments []domain.Comment
} {
	mock.lockAssemble.RLock()
	calls := mock.calls.Assemble
	mock.lockAssemble.RUnlock()
	return calls
}
