package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/query"
	"github.com/alfonsotech/philosophers-alliance/pkg/refresh"
	"github.com/alfonsotech/philosophers-alliance/server/mocks"
)

func serve(srv *Server, method, target string, hdrs map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range hdrs {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_authorsHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		ListAuthorsFunc: func(ctx context.Context, search string, limit int) (query.AuthorList, error) {
			return query.AuthorList{Items: []domain.Author{{ID: "kosmotheoros", Name: "Terrence Thomson"}}, Total: 1}, nil
		},
	}
	srv := New(testConfig(), Deps{Catalog: catalog}, Params{})

	w := serve(srv, "GET", "/api/v1/authors?search=kant&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp query.AuthorList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Total)
	assert.Equal(t, "Terrence Thomson", resp.Items[0].Name)

	require.Len(t, catalog.ListAuthorsCalls(), 1)
	assert.Equal(t, "kant", catalog.ListAuthorsCalls()[0].Search)
	assert.Equal(t, 5, catalog.ListAuthorsCalls()[0].Limit)
}

func TestServer_postsHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		ListPostsFunc: func(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error) {
			posts := []domain.Post{{ID: "a:1", Title: "On Hegel"}}
			return domain.NewPage(posts, 11, page, 10), nil
		},
	}
	srv := New(testConfig(), Deps{Catalog: catalog}, Params{})

	t.Run("explicit page", func(t *testing.T) {
		w := serve(srv, "GET", "/api/v1/posts?search=hegel&page=2&limit=10", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[{"id":"a:1","title":"On Hegel","subtitle":"","author":"","publicationName":"",
			"publishDate":"0001-01-01T00:00:00Z","link":"","sourceId":""}],"total":11,"page":2,"limit":10,"hasMore":false}`,
			w.Body.String())
	})

	t.Run("malformed params use defaults", func(t *testing.T) {
		w := serve(srv, "GET", "/api/v1/posts?page=abc&limit=x", nil)
		require.Equal(t, http.StatusOK, w.Code)
		call := catalog.ListPostsCalls()[len(catalog.ListPostsCalls())-1]
		assert.Equal(t, 1, call.Page)
		assert.Equal(t, 0, call.Limit)
		assert.Empty(t, call.Search)
	})
}

func TestServer_aggregatedHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		ListAggregatedFunc: func(ctx context.Context, search string, page, limit int) (domain.Page[domain.AggregatedPost], error) {
			return domain.Page[domain.AggregatedPost]{}, errors.New("both backends down")
		},
	}
	srv := New(testConfig(), Deps{Catalog: catalog}, Params{})

	w := serve(srv, "GET", "/api/v1/aggregated", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestServer_debugPostsHandler(t *testing.T) {
	t.Run("cover images", func(t *testing.T) {
		catalog := &mocks.CatalogMock{
			ListPostsFunc: func(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error) {
				posts := []domain.Post{
					{Title: "On Wonder", Author: "Matt Fujimoto", SourceID: "mattfujimoto", CoverImageURL: "https://cdn/w.jpg"},
					{Title: "On Doubt", Author: "Matt Fujimoto", SourceID: "mattfujimoto"},
				}
				return domain.NewPage(posts, 2, page, limit), nil
			},
		}
		srv := New(testConfig(), Deps{Catalog: catalog}, Params{})

		w := serve(srv, "GET", "/api/v1/debug/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"title":"On Wonder","hasImage":true,"imageUrl":"https://cdn/w.jpg","sourceId":"mattfujimoto","author":"Matt Fujimoto"},
			{"title":"On Doubt","hasImage":false,"imageUrl":"none","sourceId":"mattfujimoto","author":"Matt Fujimoto"}]`,
			w.Body.String())

		require.Len(t, catalog.ListPostsCalls(), 1)
		call := catalog.ListPostsCalls()[0]
		assert.Empty(t, call.Search)
		assert.Equal(t, 1, call.Page)
		assert.Equal(t, 100, call.Limit)
	})

	t.Run("empty catalog", func(t *testing.T) {
		catalog := &mocks.CatalogMock{
			ListPostsFunc: func(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error) {
				return domain.NewPage[domain.Post](nil, 0, page, limit), nil
			},
		}
		w := serve(New(testConfig(), Deps{Catalog: catalog}, Params{}), "GET", "/api/v1/debug/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		catalog := &mocks.CatalogMock{
			ListPostsFunc: func(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error) {
				return domain.Page[domain.Post]{}, errors.New("both backends down")
			},
		}
		w := serve(New(testConfig(), Deps{Catalog: catalog}, Params{}), "GET", "/api/v1/debug/posts", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to get debug information"}`, w.Body.String())
	})
}

func TestServer_sourcePostsHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		PostsBySourceFunc: func(ctx context.Context, sourceID string) ([]domain.Post, error) {
			if sourceID == "theorygang" {
				return []domain.Post{{ID: "theorygang:1", SourceID: "theorygang"}}, nil
			}
			return []domain.Post{}, nil
		},
	}
	srv := New(testConfig(), Deps{Catalog: catalog}, Params{})

	w := serve(srv, "GET", "/api/v1/sources/theorygang/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []domain.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "theorygang:1", posts[0].ID)

	w = serve(srv, "GET", "/api/v1/sources/unknown/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestServer_logoHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		LogoFunc: func(ctx context.Context, sourceID string) (string, error) {
			switch sourceID {
			case "marxandfriends":
				return "https://cdn.example.com/logo.png", nil
			case "broken":
				return "", errors.New("disk error")
			}
			return "", domain.ErrNotFound
		},
	}
	srv := New(testConfig(), Deps{Catalog: catalog}, Params{})

	w := serve(srv, "GET", "/api/v1/sources/marxandfriends/logo", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://cdn.example.com/logo.png", w.Header().Get("Location"))

	w = serve(srv, "GET", "/api/v1/sources/nologo/logo", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"logo not found"}`, w.Body.String())

	w = serve(srv, "GET", "/api/v1/sources/broken/logo", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_refreshHandler(t *testing.T) {
	summary := domain.RefreshSummary{Trigger: domain.TriggerAPI, Sources: 3, Updated: 2, Failed: 1, NewPostsCount: 7}
	newRefresher := func() *mocks.RefresherMock {
		return &mocks.RefresherMock{
			RunningFunc: func() bool { return false },
			RunFunc: func(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
				return summary, nil
			},
		}
	}

	tbl := []struct {
		name   string
		method string
		params Params
		auth   string
		code   int
	}{
		{name: "dev mode get", method: "GET", code: http.StatusOK},
		{name: "dev mode post", method: "POST", code: http.StatusOK},
		{name: "production with token", method: "POST", params: Params{Production: true, CronSecret: "s3cret"},
			auth: "Bearer s3cret", code: http.StatusOK},
		{name: "production wrong token", method: "POST", params: Params{Production: true, CronSecret: "s3cret"},
			auth: "Bearer nope", code: http.StatusUnauthorized},
		{name: "production no header", method: "GET", params: Params{Production: true, CronSecret: "s3cret"},
			code: http.StatusUnauthorized},
		{name: "production without secret", method: "GET", params: Params{Production: true}, auth: "Bearer ",
			code: http.StatusUnauthorized},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			ref := newRefresher()
			srv := New(testConfig(), Deps{Refresher: ref}, tt.params)

			w := serve(srv, tt.method, "/api/v1/refresh", map[string]string{"Authorization": tt.auth})
			require.Equal(t, tt.code, w.Code)
			if tt.code != http.StatusOK {
				assert.Empty(t, ref.RunCalls())
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
				return
			}

			require.Len(t, ref.RunCalls(), 1)
			assert.Equal(t, domain.TriggerAPI, ref.RunCalls()[0].Trigger)
			var resp domain.RefreshSummary
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, 2, resp.Updated)
			assert.Equal(t, 1, resp.Failed)
			assert.Equal(t, 7, resp.NewPostsCount)
		})
	}
}

func TestServer_refreshHandlerConflict(t *testing.T) {
	t.Run("running already", func(t *testing.T) {
		ref := &mocks.RefresherMock{RunningFunc: func() bool { return true }}
		srv := New(testConfig(), Deps{Refresher: ref}, Params{})
		w := serve(srv, "POST", "/api/v1/refresh", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, ref.RunCalls())
	})

	t.Run("started concurrently", func(t *testing.T) {
		ref := &mocks.RefresherMock{
			RunningFunc: func() bool { return false },
			RunFunc: func(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
				return domain.RefreshSummary{}, refresh.ErrRefreshInProgress
			},
		}
		srv := New(testConfig(), Deps{Refresher: ref}, Params{})
		w := serve(srv, "POST", "/api/v1/refresh", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"refresh already in progress"}`, w.Body.String())
	})

	t.Run("run failed", func(t *testing.T) {
		ref := &mocks.RefresherMock{
			RunningFunc: func() bool { return false },
			RunFunc: func(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
				return domain.RefreshSummary{}, context.DeadlineExceeded
			},
		}
		srv := New(testConfig(), Deps{Refresher: ref}, Params{})
		w := serve(srv, "POST", "/api/v1/refresh", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_refreshRunsHandler(t *testing.T) {
	started := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	history := &mocks.RunHistoryMock{
		RecentFunc: func(ctx context.Context, limit int) ([]domain.RefreshSummary, error) {
			return []domain.RefreshSummary{{ID: 2, Trigger: domain.TriggerSchedule, StartedAt: started}}, nil
		},
	}
	srv := New(testConfig(), Deps{History: history}, Params{})

	w := serve(srv, "GET", "/api/v1/refresh/runs?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var runs []domain.RefreshSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.EqualValues(t, 2, runs[0].ID)
	assert.Equal(t, started, runs[0].StartedAt)

	serve(srv, "GET", "/api/v1/refresh/runs?limit=1000", nil)
	calls := history.RecentCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, 5, calls[0].Limit)
	assert.Equal(t, defaultRunsLimit, calls[1].Limit)

	t.Run("no history", func(t *testing.T) {
		srv := New(testConfig(), Deps{}, Params{})
		w := serve(srv, "GET", "/api/v1/refresh/runs", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}
