package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/server/mocks"
)

func TestServer_rssFeedHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		ListPostsFunc: func(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error) {
			if search == "fail" {
				return domain.Page[domain.Post]{}, errors.New("storage down")
			}
			posts := []domain.Post{{ID: "marxandfriends:1", Title: "Capital, vol. 1", Author: "Marx and Friends",
				Link: "https://marxandfriends.substack.com/p/capital", PublishDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}}
			return domain.NewPage(posts, 1, page, limit), nil
		},
	}
	srv := New(testConfig(), Deps{Catalog: catalog}, Params{BaseURL: "https://alliance.example.com"})

	w := serve(srv, "GET", "/rss?search=capital", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<title>Capital, vol. 1</title>")
	assert.Contains(t, w.Body.String(), `href="https://alliance.example.com/rss?search=capital"`)

	call := catalog.ListPostsCalls()[0]
	assert.Equal(t, "capital", call.Search)
	assert.Equal(t, 1, call.Page)
	assert.Equal(t, rssPostsLimit, call.Limit)

	w = serve(srv, "GET", "/rss?search=fail", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_opmlHandler(t *testing.T) {
	sources := []domain.Source{{ID: "romaricjannel", Name: "Romaric Jannel", PublicationName: "Philosophy and Beyond",
		SubstackURL: "https://romaricjannel.substack.com", RSSURL: "https://romaricjannel.substack.com/feed"}}
	srv := New(testConfig(), Deps{}, Params{Sources: sources})

	w := serve(srv, "GET", "/opml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-opml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `xmlUrl="https://romaricjannel.substack.com/feed"`)
	assert.Contains(t, w.Body.String(), `text="Philosophy and Beyond (Romaric Jannel)"`)
}
