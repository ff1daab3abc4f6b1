package worker

import (
	"context"
	"sync"
	"time"

	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// Sweeper removes expired audit sessions
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// SessionSweepWorker periodically drops idle audit sessions so abandoned quizzes do not
// accumulate between visits.
//
// Sessions live in process memory, so one worker per server instance is enough.
type SessionSweepWorker struct {
	sweeper  Sweeper
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewSessionSweepWorker creates a worker sweeping every interval
func NewSessionSweepWorker(sweeper Sweeper, interval time.Duration) *SessionSweepWorker {
	return &SessionSweepWorker{
		sweeper:  sweeper,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the sweep loop in the background
func (w *SessionSweepWorker) Start(ctx context.Context) {
	logging.Default().Info("Session sweep worker starting", "interval", w.interval.String())
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for completion. It is safe to call more than once.
func (w *SessionSweepWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	<-w.doneCh
	logging.Default().Info("Session sweep worker stopped")
}

func (w *SessionSweepWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := w.sweeper.Sweep(ctx)
			if err != nil {
				// Log error but continue worker
				logging.Default().Error("Session sweep failed (will retry next interval)", "error", err.Error())
				continue
			}
			if removed > 0 {
				logging.Default().Info("Session sweep completed", "removed", removed)
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Session sweep worker context cancelled")
			return
		}
	}
}
