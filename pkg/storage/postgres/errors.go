package postgres

import (
	"errors"
	"fmt"

	"curator/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Names of the uniqueness constraints defined by the migrations. They are
// carried on storage.UniqueViolationError so callers can tell which invariant
// a write collided with.
const (
	// ConstraintContentItemURL guards one live content item per canonical URL.
	ConstraintContentItemURL = "content_items_url_key"
	// ConstraintDomainName guards one row per domain name.
	ConstraintDomainName = "domains_pkey"
	// ConstraintScheduleSlot guards one live binding per
	// (content item, surface, date) triple.
	ConstraintScheduleSlot = "scheduled_items_item_surface_date_key"
	// ConstraintReviewPair guards one review mark per (surface, date) pair.
	ConstraintReviewPair = "schedule_reviews_surface_date_key"
)

// translateError converts PostgreSQL unique-violation errors into
// storage.UniqueViolationError, leaving every other error untouched.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w", op, &storage.UniqueViolationError{
			Constraint: pgErr.ConstraintName,
			Err:        err,
		})
	}

	return fmt.Errorf("%s: %w", op, err)
}
