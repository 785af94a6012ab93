// Package refresh runs the aggregation cycle over the source roster.
//
// Sources are processed strictly one after another with a pause between them,
// so a run never has more than one request in flight to upstream hosts.
// For every source the refresher resolves the author profile, fetches the recent posts
// and the full catalog, then stores the author, replaces the source posts and, in
// aggregated mode, upserts recent posts into the aggregated collection. A failure of
// one source is logged and counted, the run moves on to the next source.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// ErrRefreshInProgress is returned when a refresh is requested while another one is running
var ErrRefreshInProgress = errors.New("refresh already in progress")

// Fetcher gets source data from upstream feeds
type Fetcher interface {
	FetchPosts(ctx context.Context, src domain.Source) ([]domain.Post, error)
	FetchRecent(ctx context.Context, src domain.Source) ([]domain.PostSummary, error)
	FetchProfile(ctx context.Context, rssURL, substackURL string) domain.Profile
}

// Store persists refresh results
type Store interface {
	UpsertAuthor(ctx context.Context, author domain.Author) (bool, error)
	ReplacePostsForSource(ctx context.Context, sourceID string, posts []domain.Post) error
	UpsertAggregatedPost(ctx context.Context, post domain.AggregatedPost) (bool, error)
}

// Recorder keeps the history of refresh runs
type Recorder interface {
	Record(ctx context.Context, summary domain.RefreshSummary) (int64, error)
}

// Refresher runs refresh cycles, at most one at a time
type Refresher struct {
	Params
	fetcher  Fetcher
	store    Store
	recorder Recorder
	running  atomic.Bool
}

// Params defines refresher configuration
type Params struct {
	Sources    []domain.Source // roster used by Run
	Pacing     time.Duration   // pause between sources
	Aggregated bool            // also upsert recent posts into the aggregated collection
}

// New makes a refresher. Recorder is optional.
func New(fetcher Fetcher, store Store, recorder Recorder, params Params) *Refresher {
	if params.Pacing < 0 {
		params.Pacing = 0
	}
	return &Refresher{Params: params, fetcher: fetcher, store: store, recorder: recorder}
}

// Run refreshes the configured roster and records the summary
func (r *Refresher) Run(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
	summary, err := r.RefreshAll(ctx, r.Sources)
	if errors.Is(err, ErrRefreshInProgress) {
		return summary, err
	}
	summary.Trigger = trigger

	if r.recorder != nil {
		// record even if the run was interrupted, ctx may be done already
		id, recErr := r.recorder.Record(context.WithoutCancel(ctx), summary)
		if recErr != nil {
			lgr.Printf("[WARN] can't record refresh run: %v", recErr)
		}
		summary.ID = id
	}
	return summary, err
}

// RefreshAll processes the given sources sequentially. Per-source failures are counted in
// the summary and don't stop the run, only context cancellation does.
func (r *Refresher) RefreshAll(ctx context.Context, sources []domain.Source) (domain.RefreshSummary, error) {
	if !r.running.CompareAndSwap(false, true) {
		return domain.RefreshSummary{}, ErrRefreshInProgress
	}
	defer r.running.Store(false)

	summary := domain.RefreshSummary{StartedAt: time.Now(), Sources: len(sources), NewPosts: []domain.Post{}}
	lgr.Printf("[INFO] refresh started for %d sources", len(sources))

	for i, src := range sources {
		if i > 0 && r.Pacing > 0 {
			select {
			case <-ctx.Done():
				return r.finish(summary), ctx.Err()
			case <-time.After(r.Pacing):
			}
		}
		if err := ctx.Err(); err != nil {
			return r.finish(summary), err
		}

		if err := r.refreshSource(ctx, src, &summary); err != nil {
			summary.Failed++
			lgr.Printf("[WARN] refresh of %s failed: %v", src.ID, err)
		}
	}

	summary = r.finish(summary)
	lgr.Printf("[INFO] refresh completed in %v, updated %d of %d sources, %d failed, %d posts",
		summary.Duration().Round(time.Millisecond), summary.Updated, summary.Sources, summary.Failed, summary.NewPostsCount)
	return summary, nil
}

// Running reports if a refresh is in progress
func (r *Refresher) Running() bool {
	return r.running.Load()
}

func (r *Refresher) refreshSource(ctx context.Context, src domain.Source, summary *domain.RefreshSummary) error {
	if src.RSSURL == "" {
		return fmt.Errorf("source %s has no rss url", src.ID)
	}

	profile := r.fetcher.FetchProfile(ctx, src.RSSURL, src.SubstackURL)

	recent, err := r.fetcher.FetchRecent(ctx, src)
	if err != nil {
		lgr.Printf("[WARN] can't fetch recent posts of %s: %v", src.ID, err)
		recent = nil
	}

	posts, fetchErr := r.fetcher.FetchPosts(ctx, src)

	author := domain.NewAuthor(src, profile, recent)
	created, err := r.store.UpsertAuthor(ctx, author)
	if err != nil {
		return fmt.Errorf("save author: %w", err)
	}
	if created {
		summary.AuthorsInserted++
	} else {
		summary.AuthorsUpdated++
	}

	if r.Aggregated {
		for _, s := range recent {
			if s.URL == "" {
				continue
			}
			created, err := r.store.UpsertAggregatedPost(ctx, domain.NewAggregatedPost(author, s))
			if err != nil {
				lgr.Printf("[WARN] can't save aggregated post %s: %v", s.URL, err)
				continue
			}
			if created {
				summary.AggregatedInserted++
			} else {
				summary.AggregatedUpdated++
			}
		}
	}

	// a failed or empty fetch keeps previously stored posts
	if fetchErr != nil {
		return fetchErr
	}
	if len(posts) == 0 {
		lgr.Printf("[DEBUG] no posts in feed of %s, keeping stored ones", src.ID)
		return nil
	}

	if err := r.store.ReplacePostsForSource(ctx, src.ID, posts); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	summary.Updated++
	summary.NewContentFound = true
	summary.NewPosts = append(summary.NewPosts, posts...)
	lgr.Printf("[DEBUG] refreshed %s, %d posts", src.ID, len(posts))
	return nil
}

func (r *Refresher) finish(summary domain.RefreshSummary) domain.RefreshSummary {
	summary.FinishedAt = time.Now()
	summary.NewPostsCount = len(summary.NewPosts)
	return summary
}
