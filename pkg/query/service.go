// Package query serves read paths over the stored catalog
package query

import (
	"context"
	"fmt"
	"math"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/store"
)

// limits applied to list requests
const (
	DefaultPostsLimit   = 10
	DefaultAuthorsLimit = 1500
	MaxLimit            = 1500
)

// Store is the read side of the storage
type Store interface {
	QueryAuthors(ctx context.Context, q store.AuthorQuery) ([]domain.Author, int64, error)
	QueryPosts(ctx context.Context, q store.PostQuery) ([]domain.Post, int64, error)
	QueryAggregated(ctx context.Context, q store.PostQuery) ([]domain.AggregatedPost, int64, error)
	GetLogo(ctx context.Context, sourceID string) (string, error)
}

// Service lists and searches authors and posts
type Service struct {
	store Store
}

// AuthorList is a list of authors with the total count of matches
type AuthorList struct {
	Items []domain.Author `json:"items"`
	Total int64           `json:"total"`
}

// New makes a query service
func New(st Store) *Service {
	return &Service{store: st}
}

// ListAuthors returns authors matching the search, sorted by name
func (s *Service) ListAuthors(ctx context.Context, search string, limit int) (AuthorList, error) {
	limit = normLimit(limit, DefaultAuthorsLimit)
	authors, total, err := s.store.QueryAuthors(ctx, store.AuthorQuery{Search: search, Limit: limit})
	if err != nil {
		return AuthorList{}, fmt.Errorf("list authors: %w", err)
	}
	if authors == nil {
		authors = []domain.Author{}
	}
	return AuthorList{Items: authors, Total: total}, nil
}

// ListPosts returns a page of posts matching the search, newest first
func (s *Service) ListPosts(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error) {
	page, limit = normPage(page), normLimit(limit, DefaultPostsLimit)
	q, ok := pageQuery(search, page, limit)
	posts, total, err := s.store.QueryPosts(ctx, q)
	if err != nil {
		return domain.Page[domain.Post]{}, fmt.Errorf("list posts: %w", err)
	}
	if !ok {
		posts = nil
	}
	return domain.NewPage(posts, total, page, limit), nil
}

// ListAggregated returns a page of aggregated posts matching the search, newest first
func (s *Service) ListAggregated(ctx context.Context, search string, page, limit int) (domain.Page[domain.AggregatedPost], error) {
	page, limit = normPage(page), normLimit(limit, DefaultPostsLimit)
	q, ok := pageQuery(search, page, limit)
	posts, total, err := s.store.QueryAggregated(ctx, q)
	if err != nil {
		return domain.Page[domain.AggregatedPost]{}, fmt.Errorf("list aggregated posts: %w", err)
	}
	if !ok {
		posts = nil
	}
	return domain.NewPage(posts, total, page, limit), nil
}

// PostsBySource returns all posts of the source, newest first. Unknown source gives an empty list.
func (s *Service) PostsBySource(ctx context.Context, sourceID string) ([]domain.Post, error) {
	posts, _, err := s.store.QueryPosts(ctx, store.PostQuery{SourceID: sourceID})
	if err != nil {
		return nil, fmt.Errorf("posts of %s: %w", sourceID, err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// Logo returns logo url of the source, domain.ErrNotFound if there is none
func (s *Service) Logo(ctx context.Context, sourceID string) (string, error) {
	return s.store.GetLogo(ctx, sourceID)
}

// pageQuery makes the store query for the page. A page whose offset doesn't fit int is past
// any possible end, it gets ok=false and a single-item query used only for the total count.
func pageQuery(search string, page, limit int) (q store.PostQuery, ok bool) {
	if page-1 > math.MaxInt/limit {
		return store.PostQuery{Search: search, Limit: 1}, false
	}
	return store.PostQuery{Search: search, Skip: (page - 1) * limit, Limit: limit}, true
}

func normPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normLimit(limit, def int) int {
	if limit < 1 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
