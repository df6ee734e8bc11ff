package storage

import (
	"context"

	"curator/pkg/domain"
)

// ScheduleStorage defines CRUD operations for scheduled bindings. The backend
// enforces at most one live binding per (content item, surface, date) triple;
// inserts that violate it are reported as *UniqueViolationError so callers can
// translate them into an "already scheduled" conflict.
type ScheduleStorage interface {
	// StoreSchedule inserts a new binding and returns the stored row as it
	// exists in the database (including generated fields).
	StoreSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error)
	// ScheduleByID fetches a binding by its ID. Returns nil when not found.
	ScheduleByID(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error)
	// TouchSchedule bumps a binding's updated_at and updated_by without changing
	// anything else, and returns the updated row, or nil if the binding does not
	// exist. Used for same-day reorders, which must keep the binding's identity.
	TouchSchedule(ctx context.Context, id domain.ScheduleID, updatedBy string) (*domain.Schedule, error)
	// DeleteSchedule removes a binding and returns the deleted row, or nil if it
	// was not found. Deletion is permanent; a binding has no existence past it.
	DeleteSchedule(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error)
	// SchedulesFor returns all live bindings for a (surface, date) pair ordered
	// by last update, most recently touched last.
	SchedulesFor(ctx context.Context, surface domain.Surface, date domain.Date) ([]domain.Schedule, error)
}

// ReviewStorage records human review marks for (surface, date) schedules.
type ReviewStorage interface {
	// StoreReviewMark inserts a review mark and returns the stored row. A second
	// mark for the same (surface, date) pair is reported as a
	// *UniqueViolationError.
	StoreReviewMark(ctx context.Context, mark domain.ReviewMark) (*domain.ReviewMark, error)
}
