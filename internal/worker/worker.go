// Package worker runs the background jobs of the service on river.
package worker

import (
	"context"
	"fmt"
	"fortune/pkg/logger"
	"fortune/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the river client.
type Options struct {
	// MaxWorkers bounds the concurrency of the default queue.
	MaxWorkers int
}

// Start registers every worker and starts a river client on dbPool. The caller
// owns the returned client and must Stop it on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	users storage.UserStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewTouchActivityWorker(users))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
