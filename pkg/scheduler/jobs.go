package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Reconnector is satisfied by storage/postgres.Handle.
type Reconnector interface {
	Ensure(ctx context.Context) error
}

// Sweeper is satisfied by storage/files stores.
type Sweeper interface {
	Sweep(ctx context.Context, olderThan time.Time) (int, error)
}

// ReconnectJob keeps the database handle alive at a fixed interval.
func ReconnectJob(db Reconnector, every time.Duration) Job {
	return Job{
		Name:       "db-reconnect",
		Every:      every,
		RunAtStart: false,
		Run: func(ctx context.Context) error {
			if err := db.Ensure(ctx); err != nil {
				return fmt.Errorf("database still unavailable: %w", err)
			}
			return nil
		},
	}
}

// SweepJob deletes uploads older than retention.
func SweepJob(store Sweeper, retention, every time.Duration) Job {
	return Job{
		Name:       "upload-sweep",
		Every:      every,
		RunAtStart: true,
		Run: func(ctx context.Context) error {
			n, err := store.Sweep(ctx, time.Now().Add(-retention))
			if err != nil {
				return err
			}
			if n > 0 {
				log.Printf("[scheduler] upload-sweep removed %d file(s)", n)
			}
			return nil
		},
	}
}
