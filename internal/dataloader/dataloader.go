// Package dataloader batches the lookups needed to assemble idea views
// (categories, authors, vote tallies, comments) into one query per relation.
// Loaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type categoryRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error)
}

type memberRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Member, error)
}

type voteRepo interface {
	CountByIdeaIDs(ctx context.Context, ideaIDs []int64) (map[int64]int, error)
}

type commentRepo interface {
	ListByIdeaIDs(ctx context.Context, ideaIDs []int64) ([]domain.Comment, error)
}

// Repos holds all repositories required by the loaders.
type Repos struct {
	Category categoryRepo
	Member   memberRepo
	Vote     voteRepo
	Comment  commentRepo
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders holds one batched loader per relation. Results are cached for the
// lifetime of the Loaders value, so a set must not outlive a request.
type Loaders struct {
	CategoryByID     *dataloader.Loader[int64, domain.Category]
	MemberByID       *dataloader.Loader[int64, domain.Member]
	TallyByIdeaID    *dataloader.Loader[int64, int]
	CommentsByIdeaID *dataloader.Loader[int64, []domain.Comment]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CategoryByID:     newLoader(newCategoryBatchFn(repos.Category)),
		MemberByID:       newLoader(newMemberBatchFn(repos.Member)),
		TallyByIdeaID:    newLoader(newTallyBatchFn(repos.Vote)),
		CommentsByIdeaID: newLoader(newCommentsBatchFn(repos.Comment)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
