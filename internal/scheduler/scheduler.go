package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/orevault/orevault/internal/logger"
	"github.com/orevault/orevault/internal/worker"
)

// Scheduler runs registered jobs at fixed intervals. Each schedule owns
// one goroutine; jobs run inline on it, so a slow job delays only its
// own next tick.
type Scheduler struct {
	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run
// happens one interval after registration.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx := context.Background()
				if err := job.Process(ctx); err != nil {
					logger.FromContext(ctx).Error(LogMsgScheduledJobFailed, "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for their goroutines to exit
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
