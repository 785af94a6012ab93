package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/feed"
	"github.com/alfonsotech/philosophers-alliance/pkg/query"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . RunHistory
//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . StorageProbe

// Server represents HTTP server instance
type Server struct {
	Deps
	config    ConfigProvider
	params    Params
	generator *feed.Generator

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deps are services used by handlers. History and Storage are optional.
type Deps struct {
	Catalog   Catalog
	Refresher Refresher
	History   RunHistory
	Storage   StorageProbe
}

// Params defines server behavior
type Params struct {
	Version    string
	Debug      bool
	Production bool   // refresh trigger requires CronSecret
	CronSecret string // bearer token of the refresh trigger
	BaseURL    string // public url used in generated feeds
	Sources    []domain.Source
}

// Catalog serves read requests
type Catalog interface {
	ListAuthors(ctx context.Context, search string, limit int) (query.AuthorList, error)
	ListPosts(ctx context.Context, search string, page, limit int) (domain.Page[domain.Post], error)
	ListAggregated(ctx context.Context, search string, page, limit int) (domain.Page[domain.AggregatedPost], error)
	PostsBySource(ctx context.Context, sourceID string) ([]domain.Post, error)
	Logo(ctx context.Context, sourceID string) (string, error)
}

// Refresher runs on-demand refresh
type Refresher interface {
	Run(ctx context.Context, trigger string) (domain.RefreshSummary, error)
	Running() bool
}

// RunHistory lists past refresh runs
type RunHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.RefreshSummary, error)
}

// StorageProbe reports primary storage availability
type StorageProbe interface {
	Probe(ctx context.Context) bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, params Params) *Server {
	s := &Server{
		Deps:      deps,
		config:    cfg,
		params:    params,
		generator: feed.NewGenerator(params.BaseURL, ""),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("philosophers-alliance", "alfonsotech", s.params.Version))
	s.router.Use(rest.Ping)

	if s.params.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /authors", s.authorsHandler)
		r.HandleFunc("GET /posts", s.postsHandler)
		r.HandleFunc("GET /aggregated", s.aggregatedHandler)
		r.HandleFunc("GET /sources/{id}/posts", s.sourcePostsHandler)
		r.HandleFunc("GET /sources/{id}/logo", s.logoHandler)
		r.HandleFunc("GET /debug/posts", s.debugPostsHandler)

		r.HandleFunc("GET /refresh", s.refreshHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
		r.HandleFunc("GET /refresh/runs", s.refreshRunsHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssFeedHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
