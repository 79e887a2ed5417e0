package postgres

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a River job. It reports false when a unique job with the
// same arguments already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	// an insert-only client, it never works jobs
	client, err := river.NewClient(riverdatabasesql.New(p.DB), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river client: %w", err)
	}

	res, err := client.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert job %q: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
