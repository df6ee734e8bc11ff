// Package tracker delivers curation lifecycle events to the external
// analytics pipeline. Events are enqueued as background jobs so delivery is
// decoupled from the state transition that produced them: a slow or failing
// analytics endpoint never slows down or fails a scheduling operation.
package tracker

import (
	"context"
	"fmt"
	"time"

	"curator/internal/config"
	"curator/internal/curation"
	"curator/pkg/storage"
)

// Options configure event delivery.
type Options struct {
	// Endpoint is the URL event payloads are POSTed to. Empty disables delivery;
	// jobs still run and drop their payloads so events are not retried forever
	// against a deliberately unset endpoint.
	Endpoint string
	// RequestTimeout bounds a single delivery attempt.
	RequestTimeout time.Duration
	// MaxAttempts is the maximum number of delivery attempts per event.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Endpoint:       cfg.Tracker.Endpoint,
		RequestTimeout: cfg.Tracker.RequestTimeout,
		MaxAttempts:    cfg.Tracker.MaxAttempts,
	}
}

// Sink implements curation.EventSink by enqueueing a delivery job per event.
type Sink struct {
	options Options
	storage storage.JobStorage
}

// NewSink creates a Sink backed by the given job storage.
func NewSink(storage storage.JobStorage, options Options) *Sink {
	return &Sink{
		options: options,
		storage: storage,
	}
}

// Emit enqueues the event for asynchronous delivery.
func (s *Sink) Emit(ctx context.Context, event curation.Event) error {
	if _, err := s.storage.AddJob(ctx, JobArgs{
		Event:       event,
		maxAttempts: s.options.MaxAttempts,
	}, nil); err != nil {
		return fmt.Errorf("could not enqueue tracking job: %w", err)
	}

	return nil
}
