// Package scheduler runs the background maintenance jobs of the service:
// the database reconnect loop and the upload retention sweep.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a named background task.
type Job struct {
	Name  string
	Every time.Duration

	// RunAtStart fires the task once right after Start, without waiting for the first tick.
	RunAtStart bool
	Run        func(ctx context.Context) error
}

// Scheduler wraps robfig/cron.
type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func New(jobs ...Job) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
		jobs: jobs,
	}
}

// Start registers every job and starts the cron loop. ctx is handed to each run.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, j := range s.jobs {
		if j.Every <= 0 {
			return fmt.Errorf("job %s: interval must be positive", j.Name)
		}
		j := j
		spec := fmt.Sprintf("@every %s", j.Every)
		if _, err := s.cron.AddFunc(spec, func() { s.run(ctx, j) }); err != nil {
			return fmt.Errorf("cron.AddFunc %s: %w", j.Name, err)
		}
		log.Printf("[scheduler] %s registered, spec: %s", j.Name, spec)
	}
	s.cron.Start()
	for _, j := range s.jobs {
		if j.RunAtStart {
			go s.run(ctx, j)
		}
	}
	return nil
}

// Stop stops the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("[scheduler] stopped")
}

func (s *Scheduler) run(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}
	if err := j.Run(ctx); err != nil {
		log.Printf("[scheduler] %s: %v", j.Name, err)
	}
}
