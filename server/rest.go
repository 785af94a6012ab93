package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/refresh"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
	debugPostsLimit  = 100
)

// postImage is the cover image state of one post, see debugPostsHandler
type postImage struct {
	Title    string `json:"title"`
	HasImage bool   `json:"hasImage"`
	ImageURL string `json:"imageUrl"`
	SourceID string `json:"sourceId"`
	Author   string `json:"author"`
}

var errInternal = errors.New("internal server error")

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.params.Version,
		"time":    time.Now().UTC(),
	}
	if s.Refresher != nil {
		status["refreshing"] = s.Refresher.Running()
	}
	if s.Storage != nil {
		status["storage"] = "fallback"
		if s.Storage.Probe(r.Context()) {
			status["storage"] = "primary"
		}
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// authorsHandler lists authors, GET /authors?search=&limit=
func (s *Server) authorsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.Catalog.ListAuthors(r.Context(), r.URL.Query().Get("search"), intParam(r, "limit", 0))
	if err != nil {
		log.Printf("[ERROR] failed to list authors: %v", err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// postsHandler lists posts page, GET /posts?search=&page=&limit=
func (s *Server) postsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.Catalog.ListPosts(r.Context(), q.Get("search"), intParam(r, "page", 1), intParam(r, "limit", 0))
	if err != nil {
		log.Printf("[ERROR] failed to list posts: %v", err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// debugPostsHandler reports cover images of the newest posts, GET /debug/posts
func (s *Server) debugPostsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := s.Catalog.ListPosts(r.Context(), "", 1, debugPostsLimit)
	if err != nil {
		log.Printf("[ERROR] failed to get debug posts: %v", err)
		RenderError(w, r, errors.New("failed to get debug information"), http.StatusInternalServerError)
		return
	}
	res := make([]postImage, 0, len(page.Items))
	for _, p := range page.Items {
		img := postImage{Title: p.Title, HasImage: p.CoverImageURL != "", ImageURL: p.CoverImageURL,
			SourceID: p.SourceID, Author: p.Author}
		if !img.HasImage {
			img.ImageURL = "none"
		}
		res = append(res, img)
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// aggregatedHandler lists aggregated posts page, GET /aggregated?search=&page=&limit=
func (s *Server) aggregatedHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.Catalog.ListAggregated(r.Context(), q.Get("search"), intParam(r, "page", 1), intParam(r, "limit", 0))
	if err != nil {
		log.Printf("[ERROR] failed to list aggregated posts: %v", err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// sourcePostsHandler returns all posts of a source
func (s *Server) sourcePostsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	posts, err := s.Catalog.PostsBySource(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get posts of %s: %v", id, err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, posts)
}

// logoHandler redirects to the source logo
func (s *Server) logoHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	logo, err := s.Catalog.Logo(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		RenderError(w, r, errors.New("logo not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get logo of %s: %v", id, err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, logo, http.StatusFound)
}

// refreshHandler runs a refresh of all sources and returns its summary
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		RenderError(w, r, errors.New("unauthorized"), http.StatusUnauthorized)
		return
	}
	if s.Refresher.Running() {
		RenderError(w, r, refresh.ErrRefreshInProgress, http.StatusConflict)
		return
	}

	// a refresh takes longer than the server write timeout
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		log.Printf("[WARN] can't reset write deadline: %v", err)
	}

	// the run is not aborted if the client goes away
	summary, err := s.Refresher.Run(context.WithoutCancel(r.Context()), domain.TriggerAPI)
	if errors.Is(err, refresh.ErrRefreshInProgress) {
		RenderError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("[ERROR] refresh failed: %v", err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, summary)
}

// refreshRunsHandler lists recent refresh runs, GET /refresh/runs?limit=
func (s *Server) refreshRunsHandler(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		RenderJSON(w, r, http.StatusOK, []domain.RefreshSummary{})
		return
	}
	limit := intParam(r, "limit", defaultRunsLimit)
	if limit < 1 || limit > maxRunsLimit {
		limit = defaultRunsLimit
	}
	runs, err := s.History.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get refresh runs: %v", err)
		RenderError(w, r, errInternal, http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []domain.RefreshSummary{}
	}
	RenderJSON(w, r, http.StatusOK, runs)
}

// authorized checks the bearer token of refresh requests in production mode.
// Without a configured secret production refresh is always rejected.
func (s *Server) authorized(r *http.Request) bool {
	if !s.params.Production {
		return true
	}
	if s.params.CronSecret == "" {
		return false
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.params.CronSecret)) == 1
}

// intParam returns integer query parameter, def if missing or malformed
func intParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	res, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return res
}
