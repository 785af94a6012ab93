// Package store defines the storage capability set shared by the primary and fallback
// backends, and the Gateway which routes every call to whichever backend is usable.
package store

import (
	"context"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

//go:generate moq -out mocks/primary.go -pkg mocks -skip-ensure -fmt goimports . Primary

// Backend is implemented by every storage backend
type Backend interface {
	// UpsertAuthor creates or overwrites the author by id, reports whether it was created
	UpsertAuthor(ctx context.Context, author domain.Author) (created bool, err error)
	// ReplacePostsForSource drops all posts of the source and stores the given ones.
	// Readers observe either the old or the new set, never a mix.
	ReplacePostsForSource(ctx context.Context, sourceID string, posts []domain.Post) error
	// UpsertAggregatedPost creates or overwrites the aggregated post by its url
	UpsertAggregatedPost(ctx context.Context, post domain.AggregatedPost) (created bool, err error)

	QueryAuthors(ctx context.Context, q AuthorQuery) ([]domain.Author, int64, error)
	QueryPosts(ctx context.Context, q PostQuery) ([]domain.Post, int64, error)
	QueryAggregated(ctx context.Context, q PostQuery) ([]domain.AggregatedPost, int64, error)
	// GetLogo returns logo url of the source, domain.ErrNotFound if unknown or not set
	GetLogo(ctx context.Context, sourceID string) (string, error)
}

// Primary is a networked backend with a reachability probe
type Primary interface {
	Backend
	Ping(ctx context.Context) error
}

// AuthorQuery selects authors, sorted by name ascending
type AuthorQuery struct {
	Search string
	Limit  int // 0 means no limit
}

// PostQuery selects posts or aggregated posts, sorted by date descending
type PostQuery struct {
	Search   string
	SourceID string // posts only, empty for all sources
	Skip     int
	Limit    int // 0 means no limit
}
