package idea

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ viewLoader = &viewLoaderMock{}

type viewLoaderMock struct {
	CategoriesFunc func(ctx context.Context, ids []int64) (map[int64]domain.Category, error)
	CommentsFunc   func(ctx context.Context, ideaIDs []int64) (map[int64][]domain.Comment, error)
	MembersFunc    func(ctx context.Context, ids []int64) (map[int64]domain.Member, error)
	TalliesFunc    func(ctx context.Context, ideaIDs []int64) (map[int64]int, error)

	calls struct {
		Categories []struct {
			Ctx context.Context
			Ids []int64
		}
		Comments []struct {
			Ctx     context.Context
			IdeaIDs []int64
		}
		Members []struct {
			Ctx context.Context
			Ids []int64
		}
		Tallies []struct {
			Ctx     context.Context
			IdeaIDs []int64
		}
	}
	lockCategories sync.RWMutex
	lockComments   sync.RWMutex
	lockMembers    sync.RWMutex
	lockTallies    sync.RWMutex
}

func (mock *viewLoaderMock) Categories(ctx context.Context, ids []int64) (map[int64]domain.Category, error) {
	if mock.CategoriesFunc == nil {
		panic("viewLoaderMock.CategoriesFunc: method is nil but viewLoader.Categories was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, callInfo)
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx, ids)
}

func (mock *viewLoaderMock) CategoriesCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockCategories.RLock()
	calls := mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}

func (mock *viewLoaderMock) Comments(ctx context.Context, ideaIDs []int64) (map[int64][]domain.Comment, error) {
	if mock.CommentsFunc == nil {
		panic("viewLoaderMock.CommentsFunc: method is nil but viewLoader.Comments was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IdeaIDs []int64
	}{
		Ctx:     ctx,
		IdeaIDs: ideaIDs,
	}
	mock.lockComments.Lock()
	mock.calls.Comments = append(mock.calls.Comments, callInfo)
	mock.lockComments.Unlock()
	return mock.CommentsFunc(ctx, ideaIDs)
}

func (mock *viewLoaderMock) CommentsCalls() []struct {
	Ctx     context.Context
	IdeaIDs []int64
} {
	mock.lockComments.RLock()
	calls := mock.calls.Comments
	mock.lockComments.RUnlock()
	return calls
}

func (mock *viewLoaderMock) Members(ctx context.Context, ids []int64) (map[int64]domain.Member, error) {
	if mock.MembersFunc == nil {
		panic("viewLoaderMock.MembersFunc: method is nil but viewLoader.Members was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockMembers.Lock()
	mock.calls.Members = append(mock.calls.Members, callInfo)
	mock.lockMembers.Unlock()
	return mock.MembersFunc(ctx, ids)
}

func (mock *viewLoaderMock) MembersCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockMembers.RLock()
	calls := mock.calls.Members
	mock.lockMembers.RUnlock()
	return calls
}

func (mock *viewLoaderMock) Tallies(ctx context.Context, ideaIDs []int64) (map[int64]int, error) {
	if mock.TalliesFunc == nil {
		panic("viewLoaderMock.TalliesFunc: method is nil but viewLoader.Tallies was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IdeaIDs []int64
	}{
		Ctx:     ctx,
		IdeaIDs: ideaIDs,
	}
	mock.lockTallies.Lock()
	mock.calls.Tallies = append(mock.calls.Tallies, callInfo)
	mock.lockTallies.Unlock()
	return mock.TalliesFunc(ctx, ideaIDs)
}

func (mock *viewLoaderMock) TalliesCalls() []struct {
	Ctx     context.Context
	IdeaIDs []int64
} {
	mock.lockTallies.RLock()
	calls := mock.calls.Tallies
	mock.lockTallies.RUnlock()
	return calls
}
