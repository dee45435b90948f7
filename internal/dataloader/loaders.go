package dataloader

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Categories by ID
// ---------------------------------------------------------------------------

func newCategoryBatchFn(repo categoryRepo) dataloader.BatchFunc[int64, domain.Category] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.Category] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Category](len(keys), err)
		}

		byID := make(map[int64]domain.Category, len(rows))
		for _, c := range rows {
			byID[c.ID] = c
		}

		return requireResults(keys, byID, "category")
	}
}

// ---------------------------------------------------------------------------
// Members by ID
// ---------------------------------------------------------------------------

func newMemberBatchFn(repo memberRepo) dataloader.BatchFunc[int64, domain.Member] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.Member] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Member](len(keys), err)
		}

		byID := make(map[int64]domain.Member, len(rows))
		for _, m := range rows {
			byID[m.ID] = m
		}

		return requireResults(keys, byID, "member")
	}
}

// ---------------------------------------------------------------------------
// Vote tallies by IdeaID
// ---------------------------------------------------------------------------

func newTallyBatchFn(repo voteRepo) dataloader.BatchFunc[int64, int] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[int] {
		tallies, err := repo.CountByIdeaIDs(ctx, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}

		return mapResults(keys, tallies, func() int { return 0 })
	}
}

// ---------------------------------------------------------------------------
// Comments by IdeaID
// ---------------------------------------------------------------------------

func newCommentsBatchFn(repo commentRepo) dataloader.BatchFunc[int64, []domain.Comment] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Comment] {
		rows, err := repo.ListByIdeaIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Comment](len(keys), err)
		}

		grouped := make(map[int64][]domain.Comment, len(keys))
		for _, c := range rows {
			grouped[c.IdeaID] = append(grouped[c.IdeaID], c)
		}

		return mapResults(keys, grouped, emptySlice[domain.Comment])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// requireResults maps results back to key order; a missing key is domain.ErrNotFound.
func requireResults[V any](keys []int64, byID map[int64]V, entity string) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := byID[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Error: fmt.Errorf("%s %d: %w", entity, key, domain.ErrNotFound)}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
