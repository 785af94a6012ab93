package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/refresh"
	"github.com/alfonsotech/philosophers-alliance/pkg/scheduler/mocks"
)

func TestNewScheduler(t *testing.T) {
	s := NewScheduler(&mocks.RunnerMock{}, Params{})
	assert.Equal(t, 6*time.Hour, s.interval)
	assert.False(t, s.runOnStart)

	s = NewScheduler(&mocks.RunnerMock{}, Params{Interval: time.Minute, RunOnStart: true})
	assert.Equal(t, time.Minute, s.interval)
	assert.True(t, s.runOnStart)
}

func TestScheduler_StartStop(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
			atomic.AddInt32(&runs, 1)
			return domain.RefreshSummary{Trigger: trigger}, nil
		},
	}
	s := NewScheduler(runner, Params{Interval: 20 * time.Millisecond, RunOnStart: true})
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&runs), "no runs after stop")
	assert.Equal(t, domain.TriggerSchedule, runner.RunCalls()[0].Trigger)
}

func TestScheduler_NoRunOnStart(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
			return domain.RefreshSummary{}, nil
		},
	}
	s := NewScheduler(runner, Params{Interval: time.Hour})
	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	assert.Empty(t, runner.RunCalls())
}

func TestScheduler_RunErrorsDontStopWorker(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, trigger string) (domain.RefreshSummary, error) {
			if atomic.AddInt32(&runs, 1) == 1 {
				return domain.RefreshSummary{}, refresh.ErrRefreshInProgress
			}
			return domain.RefreshSummary{}, context.DeadlineExceeded
		},
	}
	s := NewScheduler(runner, Params{Interval: 10 * time.Millisecond, RunOnStart: true})
	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()
}
