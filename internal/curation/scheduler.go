package curation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"curator/pkg/domain"
	"curator/pkg/logger"
	"curator/pkg/serrors"
	"curator/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Schedule places a content item on a (surface, date) slot. The slot's
// uniqueness is enforced solely by the storage layer's composite constraint;
// concurrent writers race there and the loser receives the translated
// "already scheduled" conflict. On success the item's domain is considered
// for trusted promotion and an ADD_SCHEDULE event is emitted.
func (c *curator) Schedule(ctx context.Context, input ScheduleInput) (*domain.Schedule, error) {
	if !KnownSurface(input.Surface) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown surface %q", input.Surface)
	}
	if input.Date == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "date is required")
	}
	if !input.Method.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown schedule method %q", input.Method)
	}

	item, err := c.storage.ContentItemByID(ctx, input.ContentItemID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch content item: %w", err)
	}
	if item == nil {
		return nil, serrors.With(serrors.ErrNotFound, "content item not found")
	}

	schedule, err := c.storage.StoreSchedule(ctx, domain.Schedule{
		ContentItemID: input.ContentItemID,
		Surface:       input.Surface,
		Date:          input.Date,
		Method:        input.Method,
		CreatedBy:     input.CreatedBy,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, serrors.Wrap(serrors.ErrConflict, err,
				"content item is already scheduled for %s on %s", input.Surface, input.Date)
		}

		return nil, fmt.Errorf("could not store schedule: %w", err)
	}

	c.promoter.PromoteIfPastDate(ctx, item.DomainName, schedule.Date)
	c.countTransition(ctx, "schedule", schedule.Surface)
	c.emit(ctx, newScheduleAddedEvent(schedule, item))

	logger.Info(ctx, "scheduled content item",
		zap.String("scheduleID", uuid.UUID(schedule.ID).String()),
		zap.String("surface", string(schedule.Surface)),
		zap.String("date", schedule.Date.String()))

	return schedule, nil
}

// Unschedule removes a binding and emits a REMOVE_SCHEDULE event identified
// by a fresh correlation ID, back-referencing the retired binding.
func (c *curator) Unschedule(ctx context.Context, input UnscheduleInput) (*domain.Schedule, error) {
	deleted, err := c.storage.DeleteSchedule(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("could not delete schedule: %w", err)
	}
	if deleted == nil {
		return nil, serrors.With(serrors.ErrNotFound, "schedule not found")
	}

	item, err := c.storage.ContentItemByID(ctx, deleted.ContentItemID)
	if err != nil {
		logger.Error(ctx, "could not fetch content item for removal event", zap.Error(err))
	}

	c.countTransition(ctx, "unschedule", deleted.Surface)
	c.emit(ctx, newScheduleRemovedEvent(deleted, item, input))

	logger.Info(ctx, "unscheduled content item",
		zap.String("scheduleID", uuid.UUID(deleted.ID).String()),
		zap.String("surface", string(deleted.Surface)),
		zap.String("date", deleted.Date.String()))

	return deleted, nil
}

// Reschedule moves a binding to a new date.
//
// Moving to the binding's current date is a same-day reorder: the row is
// touched in place, the identifier is kept and no event is emitted, so the
// ML training signal is not polluted by UI reordering.
//
// Moving to a different date deletes the old binding and inserts a new one,
// so the destination slot's uniqueness is enforced by the insert rather than
// bypassed by an update. The two steps are intentionally not atomic: a
// destination conflict surfaces as "already scheduled" after the source slot
// has been vacated.
func (c *curator) Reschedule(ctx context.Context, input RescheduleInput) (*domain.Schedule, error) {
	if input.NewDate == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "date is required")
	}
	if !input.Method.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown schedule method %q", input.Method)
	}

	current, err := c.storage.ScheduleByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch schedule: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "schedule not found")
	}

	if input.NewDate == current.Date {
		touched, err := c.storage.TouchSchedule(ctx, input.ID, input.UpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("could not touch schedule: %w", err)
		}
		if touched == nil {
			return nil, serrors.With(serrors.ErrNotFound, "schedule not found")
		}

		return touched, nil
	}

	deleted, err := c.storage.DeleteSchedule(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("could not delete schedule: %w", err)
	}
	if deleted == nil {
		return nil, serrors.With(serrors.ErrNotFound, "schedule not found")
	}

	created, err := c.storage.StoreSchedule(ctx, domain.Schedule{
		ContentItemID: deleted.ContentItemID,
		Surface:       deleted.Surface,
		Date:          input.NewDate,
		Method:        input.Method,
		CreatedBy:     input.UpdatedBy,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, serrors.Wrap(serrors.ErrConflict, err,
				"content item is already scheduled for %s on %s", deleted.Surface, input.NewDate)
		}

		return nil, fmt.Errorf("could not store schedule: %w", err)
	}

	c.countTransition(ctx, "reschedule", created.Surface)
	c.emit(ctx, newScheduleRescheduledEvent(created, deleted))

	logger.Info(ctx, "rescheduled content item",
		zap.String("scheduleID", uuid.UUID(created.ID).String()),
		zap.String("originalScheduleID", uuid.UUID(deleted.ID).String()),
		zap.String("surface", string(created.Surface)),
		zap.String("date", created.Date.String()))

	return created, nil
}

// MarkReviewed records a human review of the full (surface, date) schedule.
// A second mark for the same pair is a distinguishable conflict, not a
// generic write error.
func (c *curator) MarkReviewed(ctx context.Context, input MarkReviewedInput) (*domain.ReviewMark, error) {
	if !KnownSurface(input.Surface) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown surface %q", input.Surface)
	}
	if input.Date == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "date is required")
	}

	mark, err := c.storage.StoreReviewMark(ctx, domain.ReviewMark{
		Surface:    input.Surface,
		Date:       input.Date,
		ReviewedBy: input.ReviewedBy,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, serrors.Wrap(serrors.ErrConflict, err,
				"schedule for %s on %s has already been reviewed", input.Surface, input.Date)
		}

		return nil, fmt.Errorf("could not store review mark: %w", err)
	}

	return mark, nil
}

// ScheduleFor lists the live bindings of a (surface, date) pair.
func (c *curator) ScheduleFor(ctx context.Context,
	surface domain.Surface,
	date domain.Date) ([]domain.Schedule, error) {
	if !KnownSurface(surface) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown surface %q", surface)
	}

	schedules, err := c.storage.SchedulesFor(ctx, surface, date)
	if err != nil {
		return nil, fmt.Errorf("could not fetch schedules: %w", err)
	}

	return schedules, nil
}

func newContentItemCreatedEvent(item *domain.ContentItem) Event {
	return Event{
		Type:        EventCreateContentItem,
		EventID:     uuid.New(),
		Status:      "created",
		ContentItem: item,
	}
}

func newScheduleAddedEvent(schedule *domain.Schedule, item *domain.ContentItem) Event {
	id := uuid.UUID(schedule.ID)

	return Event{
		Type:        EventAddSchedule,
		EventID:     uuid.New(),
		Status:      "added",
		ScheduleID:  &id,
		Surface:     schedule.Surface,
		Date:        schedule.Date,
		Method:      schedule.Method,
		ContentItem: item,
	}
}

func newScheduleRemovedEvent(deleted *domain.Schedule,
	item *domain.ContentItem,
	input UnscheduleInput) Event {
	originalID := uuid.UUID(deleted.ID)
	event := Event{
		Type:               EventRemoveSchedule,
		EventID:            uuid.New(),
		Status:             "removed",
		OriginalScheduleID: &originalID,
		Surface:            deleted.Surface,
		Date:               deleted.Date,
		Method:             deleted.Method,
		ContentItem:        item,
	}
	if SurfaceAcceptsRemovalReasons(deleted.Surface) {
		event.RemovalReasons = input.Reasons
		event.RemovalComment = strings.TrimSpace(input.Comment)
	}

	return event
}

func newScheduleRescheduledEvent(created, deleted *domain.Schedule) Event {
	newID := uuid.UUID(created.ID)
	originalID := uuid.UUID(deleted.ID)

	return Event{
		Type:               EventReschedule,
		EventID:            uuid.New(),
		Status:             "rescheduled",
		ScheduleID:         &newID,
		OriginalScheduleID: &originalID,
		Surface:            created.Surface,
		Date:               created.Date,
		Method:             created.Method,
	}
}
