package query

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/store"
	"github.com/alfonsotech/philosophers-alliance/pkg/store/file"
	"github.com/alfonsotech/philosophers-alliance/pkg/store/mocks"
)

func prepService(t *testing.T, posts int) *Service {
	t.Helper()
	fs, err := file.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	list := make([]domain.Post, 0, posts)
	for i := 0; i < posts; i++ {
		list = append(list, domain.Post{ID: fmt.Sprintf("src:%d", i), SourceID: "src", Title: fmt.Sprintf("post %d", i),
			Author: "Mona Mona", PublicationName: "Philosophy Publics", PublishDate: base.Add(time.Duration(i) * time.Hour)})
	}
	require.NoError(t, fs.ReplacePostsForSource(ctx, "src", list))
	return New(store.NewGateway(nil, fs, 0))
}

func TestService_ListPostsPagination(t *testing.T) {
	svc := prepService(t, 25)
	ctx := context.Background()

	seen := map[string]bool{}
	collected := 0
	for page := 1; ; page++ {
		res, err := svc.ListPosts(ctx, "", page, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 25, res.Total)
		assert.Equal(t, page, res.Page)
		assert.Equal(t, 10, res.Limit)
		assert.LessOrEqual(t, len(res.Items), 10)
		for _, p := range res.Items {
			assert.False(t, seen[p.ID])
			seen[p.ID] = true
		}
		collected += len(res.Items)
		assert.Equal(t, collected < 25, res.HasMore)
		if !res.HasMore {
			break
		}
	}
	assert.Equal(t, 25, collected)
}

func TestService_ListPostsHugePage(t *testing.T) {
	svc := prepService(t, 25)
	ctx := context.Background()

	for _, page := range []int{math.MaxInt64/10*2 + 1, math.MaxInt64/10 + 2, math.MaxInt} {
		res, err := svc.ListPosts(ctx, "", page, 10)
		require.NoError(t, err)
		assert.Empty(t, res.Items, "page %d", page)
		assert.False(t, res.HasMore, "page %d", page)
		assert.EqualValues(t, 25, res.Total)
		assert.Equal(t, page, res.Page)
	}

	var got store.PostQuery
	st := &mocks.PrimaryMock{
		QueryAggregatedFunc: func(ctx context.Context, q store.PostQuery) ([]domain.AggregatedPost, int64, error) {
			got = q
			return []domain.AggregatedPost{{PostURL: "u1"}}, 7, nil
		},
	}
	res, err := New(st).ListAggregated(ctx, "", math.MaxInt, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.False(t, res.HasMore)
	assert.EqualValues(t, 7, res.Total)
	assert.Zero(t, got.Skip, "no negative skip sent to storage")
}

func TestService_ListPostsDefaults(t *testing.T) {
	svc := prepService(t, 12)
	res, err := svc.ListPosts(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, DefaultPostsLimit, res.Limit)
	assert.Len(t, res.Items, DefaultPostsLimit)
	assert.True(t, res.HasMore)
	assert.Equal(t, "post 11", res.Items[0].Title, "newest first")

	res, err = svc.ListPosts(context.Background(), "publics", 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, res.Limit)
	assert.Len(t, res.Items, 12)
	assert.False(t, res.HasMore)

	res, err = svc.ListPosts(context.Background(), "post 3", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)
}

func TestService_PostsBySource(t *testing.T) {
	svc := prepService(t, 3)
	posts, err := svc.PostsBySource(context.Background(), "src")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "src:2", posts[0].ID)

	posts, err = svc.PostsBySource(context.Background(), "unknown")
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestService_ListAuthorsAndLogo(t *testing.T) {
	var gotLimit int
	st := &mocks.PrimaryMock{
		QueryAuthorsFunc: func(ctx context.Context, q store.AuthorQuery) ([]domain.Author, int64, error) {
			gotLimit = q.Limit
			return nil, 0, nil
		},
		GetLogoFunc: func(ctx context.Context, id string) (string, error) {
			if id == "known" {
				return "https://cdn/logo.png", nil
			}
			return "", domain.ErrNotFound
		},
	}
	svc := New(st)
	ctx := context.Background()

	res, err := svc.ListAuthors(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultAuthorsLimit, gotLimit)
	assert.NotNil(t, res.Items)

	logo, err := svc.Logo(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/logo.png", logo)
	_, err = svc.Logo(ctx, "unknown")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListAggregated(t *testing.T) {
	var got store.PostQuery
	st := &mocks.PrimaryMock{
		QueryAggregatedFunc: func(ctx context.Context, q store.PostQuery) ([]domain.AggregatedPost, int64, error) {
			got = q
			return []domain.AggregatedPost{{PostURL: "u1"}, {PostURL: "u2"}}, 7, nil
		},
	}
	res, err := New(st).ListAggregated(context.Background(), "kant", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, store.PostQuery{Search: "kant", Skip: 4, Limit: 2}, got)
	assert.True(t, res.HasMore)
	assert.EqualValues(t, 7, res.Total)
}

func TestService_Errors(t *testing.T) {
	st := &mocks.PrimaryMock{
		QueryPostsFunc: func(ctx context.Context, q store.PostQuery) ([]domain.Post, int64, error) {
			return nil, 0, errors.New("both backends down")
		},
	}
	_, err := New(st).ListPosts(context.Background(), "", 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list posts")
}
