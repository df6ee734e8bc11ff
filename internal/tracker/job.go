package tracker

import (
	"curator/internal/curation"

	"github.com/riverqueue/river"
)

// JobArgs carries one lifecycle event payload through the queue to the
// delivery worker. Every event is enqueued exactly once; retries on delivery
// failure are River's concern.
type JobArgs struct {
	// Event is the payload to be delivered to the tracking pipeline.
	Event curation.Event `json:"event"`

	// maxAttempts configures the maximum number of delivery attempts.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the delivery worker.
func (args JobArgs) Kind() string { return "TrackCurationEvent" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
