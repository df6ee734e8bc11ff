package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"curator/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// DeliveryWorker is a River worker that POSTs lifecycle event payloads to the
// configured analytics endpoint. Failed deliveries are retried by River up to
// the job's MaxAttempts.
type DeliveryWorker struct {
	river.WorkerDefaults[JobArgs]

	options    Options
	httpClient *http.Client
}

// NewDeliveryWorker constructs a DeliveryWorker with its own HTTP client.
func NewDeliveryWorker(options Options) *DeliveryWorker {
	return &DeliveryWorker{
		options: options,
		httpClient: &http.Client{
			Timeout: options.RequestTimeout,
		},
	}
}

// Work delivers a single event payload. When no endpoint is configured the
// payload is dropped, not retried.
func (w *DeliveryWorker) Work(ctx context.Context, job *river.Job[JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("eventType", string(job.Args.Event.Type)),
		zap.String("eventID", job.Args.Event.EventID.String()))

	if w.options.Endpoint == "" {
		logger.Debug(ctx, "tracker endpoint not configured, dropping event")

		return nil
	}

	body, err := json.Marshal(job.Args.Event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		w.options.Endpoint,
		bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send event: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("event delivery failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	logger.Info(ctx, "event delivered")

	return nil
}

// Start registers the delivery worker and starts the River client on the
// given pool.
func Start(ctx context.Context, dbPool *pgxpool.Pool, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDeliveryWorker(options))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
