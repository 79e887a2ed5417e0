package worker

import (
	"context"
	"fmt"
	"fortune/pkg/domain"
	"fortune/pkg/logger"
	"fortune/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// TouchActivityKind is the river kind of TouchActivityArgs.
const TouchActivityKind = "touch_activity"

// TouchActivityArgs asks a worker to move a user's last_active_at forward.
// At most one job per user is enqueued per unique period.
type TouchActivityArgs struct {
	UserID string    `json:"user_id" river:"unique"`
	At     time.Time `json:"at"`

	uniquePeriod time.Duration
}

func (TouchActivityArgs) Kind() string { return TouchActivityKind }

func (args TouchActivityArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// TouchActivityWorker applies TouchActivityArgs.
type TouchActivityWorker struct {
	river.WorkerDefaults[TouchActivityArgs]

	users storage.UserStorage
}

// NewTouchActivityWorker creates a worker writing through users.
func NewTouchActivityWorker(users storage.UserStorage) *TouchActivityWorker {
	return &TouchActivityWorker{users: users}
}

func (w *TouchActivityWorker) Work(ctx context.Context, job *river.Job[TouchActivityArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("userID", job.Args.UserID))

	id, err := domain.ParseUserID(job.Args.UserID)
	if err != nil {
		// retrying cannot fix a malformed id
		return river.JobCancel(fmt.Errorf("invalid user id: %w", err)) //nolint: wrapcheck
	}

	at := job.Args.At
	if at.IsZero() {
		at = job.CreatedAt
	}
	if err := w.users.TouchUser(ctx, id, at); err != nil {
		logger.Error(ctx, "could not touch user activity", zap.Error(err))

		return fmt.Errorf("could not touch user activity: %w", err)
	}

	logger.Debug(ctx, "user activity touched", zap.Time("at", at))

	return nil
}

// Toucher enqueues TouchActivityArgs. Enqueue failures are logged and
// swallowed, activity tracking must never fail the request that triggered it.
type Toucher struct {
	jobs         storage.JobStorage
	uniquePeriod time.Duration
	now          func() time.Time
}

// NewToucher creates a Toucher. A nil jobs disables activity tracking.
func NewToucher(jobs storage.JobStorage, uniquePeriod time.Duration) *Toucher {
	return &Toucher{jobs: jobs, uniquePeriod: uniquePeriod, now: time.Now}
}

// Touch records that userID was active now.
func (t *Toucher) Touch(ctx context.Context, userID domain.UserID) {
	if t == nil || t.jobs == nil {
		return
	}

	_, err := t.jobs.AddJob(ctx, TouchActivityArgs{
		UserID:       userID.String(),
		At:           t.now().UTC(),
		uniquePeriod: t.uniquePeriod,
	}, nil)
	if err != nil {
		logger.Warn(ctx, "could not enqueue activity touch", zap.Error(err), zap.Stringer("userID", userID))
	}
}
