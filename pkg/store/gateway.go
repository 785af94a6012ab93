package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

// Gateway routes storage calls to the primary backend when it answers a probe,
// and to the fallback backend otherwise or when the primary call fails.
// The probe is repeated for every call, primary state is never cached.
type Gateway struct {
	primary      Primary
	fallback     Backend
	probeTimeout time.Duration
}

// NewGateway makes a gateway. Primary can be nil, in which case everything goes to the fallback.
func NewGateway(primary Primary, fallback Backend, probeTimeout time.Duration) *Gateway {
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	return &Gateway{primary: primary, fallback: fallback, probeTimeout: probeTimeout}
}

// Probe checks if the primary backend is reachable
func (g *Gateway) Probe(ctx context.Context) bool {
	if g.primary == nil {
		return false
	}
	pctx, cancel := context.WithTimeout(ctx, g.probeTimeout)
	defer cancel()
	if err := g.primary.Ping(pctx); err != nil {
		lgr.Printf("[INFO] primary storage unreachable, using fallback: %v", err)
		return false
	}
	return true
}

// UpsertAuthor stores the author
func (g *Gateway) UpsertAuthor(ctx context.Context, author domain.Author) (bool, error) {
	return route(ctx, g, "upsert author "+author.ID, func(b Backend) (bool, error) {
		return b.UpsertAuthor(ctx, author)
	})
}

// ReplacePostsForSource replaces posts of the source
func (g *Gateway) ReplacePostsForSource(ctx context.Context, sourceID string, posts []domain.Post) error {
	_, err := route(ctx, g, "replace posts for "+sourceID, func(b Backend) (struct{}, error) {
		return struct{}{}, b.ReplacePostsForSource(ctx, sourceID, posts)
	})
	return err
}

// UpsertAggregatedPost stores the aggregated post
func (g *Gateway) UpsertAggregatedPost(ctx context.Context, post domain.AggregatedPost) (bool, error) {
	return route(ctx, g, "upsert aggregated post", func(b Backend) (bool, error) {
		return b.UpsertAggregatedPost(ctx, post)
	})
}

type listResult[T any] struct {
	items []T
	total int64
}

// QueryAuthors lists authors
func (g *Gateway) QueryAuthors(ctx context.Context, q AuthorQuery) ([]domain.Author, int64, error) {
	res, err := route(ctx, g, "query authors", func(b Backend) (listResult[domain.Author], error) {
		items, total, err := b.QueryAuthors(ctx, q)
		return listResult[domain.Author]{items: items, total: total}, err
	})
	return res.items, res.total, err
}

// QueryPosts lists posts
func (g *Gateway) QueryPosts(ctx context.Context, q PostQuery) ([]domain.Post, int64, error) {
	res, err := route(ctx, g, "query posts", func(b Backend) (listResult[domain.Post], error) {
		items, total, err := b.QueryPosts(ctx, q)
		return listResult[domain.Post]{items: items, total: total}, err
	})
	return res.items, res.total, err
}

// QueryAggregated lists aggregated posts
func (g *Gateway) QueryAggregated(ctx context.Context, q PostQuery) ([]domain.AggregatedPost, int64, error) {
	res, err := route(ctx, g, "query aggregated posts", func(b Backend) (listResult[domain.AggregatedPost], error) {
		items, total, err := b.QueryAggregated(ctx, q)
		return listResult[domain.AggregatedPost]{items: items, total: total}, err
	})
	return res.items, res.total, err
}

// GetLogo returns logo url of the source
func (g *Gateway) GetLogo(ctx context.Context, sourceID string) (string, error) {
	return route(ctx, g, "get logo for "+sourceID, func(b Backend) (string, error) {
		return b.GetLogo(ctx, sourceID)
	})
}

// route runs fn on the primary if it answers the probe, and on the fallback if the probe
// or the primary call fails. Not-found from the primary is a valid answer and returned as is.
func route[T any](ctx context.Context, g *Gateway, op string, fn func(b Backend) (T, error)) (T, error) {
	if g.Probe(ctx) {
		res, err := fn(g.primary)
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			return res, err
		}
		lgr.Printf("[WARN] primary storage failed to %s, using fallback: %v", op, err)
	}

	res, err := fn(g.fallback)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return res, err
}
