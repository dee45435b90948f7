package dataloader

import (
	"context"
	"net/http"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Provider hands out the loaders of the current request. Callers outside an
// HTTP request (CLI, tests) get a fresh set per call.
type Provider struct {
	repos *Repos
}

// NewProvider creates a Provider backed by the given repositories.
func NewProvider(repos *Repos) *Provider {
	return &Provider{repos: repos}
}

// Middleware installs a per-request set of loaders in the request context.
func (p *Provider) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(p.repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (p *Provider) loaders(ctx context.Context) *Loaders {
	if l, ok := FromContext(ctx); ok {
		return l
	}
	return NewLoaders(p.repos)
}

// Categories returns the categories with the given ids keyed by id.
// A missing id fails the whole call with domain.ErrNotFound.
func (p *Provider) Categories(ctx context.Context, ids []int64) (map[int64]domain.Category, error) {
	return loadMap(ctx, p.loaders(ctx).CategoryByID, ids)
}

// Members returns the members with the given ids keyed by id.
func (p *Provider) Members(ctx context.Context, ids []int64) (map[int64]domain.Member, error) {
	return loadMap(ctx, p.loaders(ctx).MemberByID, ids)
}

// Tallies returns vote counts keyed by idea id; ideas without votes map to 0.
func (p *Provider) Tallies(ctx context.Context, ideaIDs []int64) (map[int64]int, error) {
	return loadMap(ctx, p.loaders(ctx).TallyByIdeaID, ideaIDs)
}

// Comments returns the flat comment list of each idea keyed by idea id.
func (p *Provider) Comments(ctx context.Context, ideaIDs []int64) (map[int64][]domain.Comment, error) {
	return loadMap(ctx, p.loaders(ctx).CommentsByIdeaID, ideaIDs)
}

// loadMap loads all keys through one batched call and returns the first error.
func loadMap[V any](ctx context.Context, l *dataloader.Loader[int64, V], ids []int64) (map[int64]V, error) {
	keys := uniqueKeys(ids)
	out := make(map[int64]V, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	values, errs := l.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for i, key := range keys {
		out[key] = values[i]
	}
	return out, nil
}

func uniqueKeys(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, id)
	}
	return keys
}
