package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the same database that holds the
// ledger, so a job inserted inside a transaction only becomes visible on commit.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted. False with a nil
	// error means a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
