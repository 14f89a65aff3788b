package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/worker"
)

// Scheduler enqueues jobs onto the worker pool on cron schedules
type Scheduler struct {
	cron       *cron.Cron
	workerPool *worker.Pool
}

// New creates a new scheduler. Schedules are evaluated in UTC.
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		workerPool: pool,
	}
}

// Schedule registers job under a cron spec ("@every 30s", "0 * * * *").
// When a run comes due the job is handed to the worker pool, never run inline.
func (s *Scheduler) Schedule(spec, name string, job worker.Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		if !s.workerPool.Enqueue(job) {
			logger.Warn("Scheduled job skipped", "job", name)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s with %q: %w", name, spec, err)
	}
	logger.Info("Job scheduled", "job", name, "spec", spec)
	return nil
}

// Entries returns the number of registered schedules
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start begins evaluating schedules
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all schedules and waits for in-progress enqueues
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
