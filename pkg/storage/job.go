package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs,
// used by the analytics tracker to hand event payloads to the delivery worker.
// Implementations persist the job into the underlying queue backend; args
// carries the payload and opts can customize insertion behavior (queue name,
// delay, priority). The insert participates in any surrounding transaction
// when the backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result
	// reports whether a job was actually inserted (false when skipped as a
	// duplicate of an existing unique job).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
