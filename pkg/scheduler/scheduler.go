package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/refresh"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Scheduler triggers roster refresh periodically
type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runOnStart bool
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// Runner runs a refresh of the roster
type Runner interface {
	Run(ctx context.Context, trigger string) (domain.RefreshSummary, error)
}

// Params defines scheduler configuration
type Params struct {
	Interval   time.Duration
	RunOnStart bool
}

// NewScheduler creates a new scheduler instance
func NewScheduler(runner Runner, params Params) *Scheduler {
	if params.Interval <= 0 {
		params.Interval = 6 * time.Hour
	}
	return &Scheduler{runner: runner, interval: params.Interval, runOnStart: params.RunOnStart}
}

// Start begins periodic refresh in background
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started with refresh interval %v", s.interval)
}

// Stop gracefully stops the scheduler, waiting for an active refresh to be interrupted
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.runRefresh(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	summary, err := s.runner.Run(ctx, domain.TriggerSchedule)
	switch {
	case errors.Is(err, refresh.ErrRefreshInProgress):
		lgr.Printf("[INFO] scheduled refresh skipped, another one is in progress")
	case errors.Is(err, context.Canceled):
		lgr.Printf("[INFO] scheduled refresh interrupted")
	case err != nil:
		lgr.Printf("[WARN] scheduled refresh failed: %v", err)
	default:
		lgr.Printf("[DEBUG] scheduled refresh done, %d updated, %d failed", summary.Updated, summary.Failed)
	}
}
