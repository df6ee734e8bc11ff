package curation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"curator/internal/config"
	"curator/pkg/domain"
	"curator/pkg/logger"
	"curator/pkg/serrors"
	"curator/pkg/storage"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Options configure the lifecycle engine. These settings are typically
// derived from application configuration.
type Options struct {
	// CreateMaxAttempts bounds how many times a content-item creation is
	// attempted when it keeps losing the domain-registration race.
	CreateMaxAttempts uint64
	// CreateRetryBaseDelay is the base delay of the exponential backoff between
	// creation attempts.
	CreateRetryBaseDelay time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CreateMaxAttempts:    cfg.Curation.CreateMaxAttempts,
		CreateRetryBaseDelay: cfg.Curation.CreateRetryBaseDelay,
	}
}

// curator is the concrete implementation of the Curator interface. It
// coordinates persistence with the storage layer, promotes trusted domains as
// a scheduling side effect, and emits lifecycle events to the sink.
type curator struct {
	options  Options
	storage  storage.Storage
	sink     EventSink
	promoter *TrustedDomainPromoter

	// transitions counts successful lifecycle transitions per operation and
	// surface.
	transitions metric.Int64Counter
}

// New creates a new Curator backed by the provided storage and sink.
func New(storage storage.Storage, sink EventSink, options Options) Curator {
	meter := otel.Meter("curator/curation")
	transitions, _ := meter.Int64Counter("curation_lifecycle_transitions_total",
		metric.WithDescription("Number of successful schedule lifecycle transitions"))

	return &curator{
		options:     options,
		storage:     storage,
		sink:        sink,
		promoter:    NewTrustedDomainPromoter(storage),
		transitions: transitions,
	}
}

// errDomainRace marks a uniqueness violation raised while registering the
// content item's domain, as opposed to one raised by the item insert itself.
// Only this race is transparently retried.
var errDomainRace = errors.New("domain registration race")

// CreateContentItem normalizes and validates the input, rejects duplicate
// URLs, then inserts the item and find-or-creates its domain in one
// transaction. A uniqueness violation on the domain insert means another
// writer registered the same new domain first; the whole creation is retried
// with exponential backoff until the now-existing row is found.
func (c *curator) CreateContentItem(ctx context.Context,
	input CreateContentItemInput) (*domain.ContentItem, error) {
	URL, err := NormalizeURL(input.URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}
	domainName, err := DomainName(URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}
	if input.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if input.CreatedBy == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "createdBy is required")
	}

	existing, err := c.storage.ContentItemByURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("could not check for existing content item: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "a content item already exists for URL %s", URL)
	}

	backoff := retry.WithMaxRetries(c.options.CreateMaxAttempts-1,
		retry.WithJitterPercent(10, retry.NewExponential(c.options.CreateRetryBaseDelay)))

	var item *domain.ContentItem
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		txErr := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.FindOrCreateDomain(ctx, domainName); err != nil {
				if errors.Is(err, storage.ErrUniqueViolation) {
					return fmt.Errorf("%w: %w", errDomainRace, err)
				}

				return err
			}

			stored, err := tx.StoreContentItem(ctx, domain.ContentItem{
				URL:        URL,
				DomainName: domainName,
				Title:      input.Title,
				Excerpt:    input.Excerpt,
				Publisher:  input.Publisher,
				CreatedBy:  input.CreatedBy,
			})
			if err != nil {
				return err
			}
			item = stored

			return nil
		})
		if errors.Is(txErr, errDomainRace) {
			logger.Warn(ctx, "lost domain registration race, retrying",
				zap.String("domain", domainName))

			return retry.RetryableError(txErr)
		}

		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, errDomainRace):
			// retries exhausted on a persistent conflict
			return nil, serrors.Wrap(serrors.ErrConflict, err,
				"could not register domain %s", domainName)
		case errors.Is(err, storage.ErrUniqueViolation):
			// the item insert itself collided: another writer just registered the
			// same URL
			return nil, serrors.Wrap(serrors.ErrConflict, err,
				"a content item already exists for URL %s", URL)
		default:
			return nil, fmt.Errorf("could not create content item: %w", err)
		}
	}

	c.emit(ctx, newContentItemCreatedEvent(item))

	return item, nil
}

// emit hands an event to the sink. Sink failures are logged and swallowed;
// they must never affect the outcome of the transition that produced the
// event.
func (c *curator) emit(ctx context.Context, event Event) {
	if c.sink == nil {
		return
	}
	if err := c.sink.Emit(ctx, event); err != nil {
		logger.Error(ctx, "could not emit lifecycle event",
			zap.String("eventType", string(event.Type)),
			zap.Error(err))
	}
}

// countTransition records a successful transition for metrics.
func (c *curator) countTransition(ctx context.Context, operation string, surface domain.Surface) {
	c.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("surface", string(surface)),
	))
}
