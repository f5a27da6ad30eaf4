// Package dataloader provides per-request DataLoaders that batch keyword
// lookups for the listings rendered in one response into a single SQL call.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type keywordRepo interface {
	KeywordsByServiceIDs(ctx context.Context, serviceIDs []int64) ([]domain.Keyword, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	Keyword keywordRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	KeywordsByServiceID *dataloader.Loader[int64, []domain.Keyword]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		KeywordsByServiceID: newLoader(newKeywordsBatchFn(repos.Keyword)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// AttachKeywords fills in the Keywords of every listing that has none loaded.
// All lookups of one call share a batch.
func AttachKeywords(ctx context.Context, listings []domain.ServiceListing) error {
	loaders := FromContext(ctx)

	thunks := make([]dataloader.Thunk[[]domain.Keyword], len(listings))
	for i, l := range listings {
		if l.Keywords != nil {
			continue
		}
		thunks[i] = loaders.KeywordsByServiceID.Load(ctx, l.ID)
	}

	for i, thunk := range thunks {
		if thunk == nil {
			continue
		}
		kws, err := thunk()
		if err != nil {
			return err
		}
		listings[i].Keywords = kws
	}
	return nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
