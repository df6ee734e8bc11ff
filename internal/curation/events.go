package curation

import (
	"context"

	"curator/pkg/domain"

	"github.com/google/uuid"
)

// EventType names the lifecycle transition an analytics event describes.
type EventType string

const (
	// EventAddSchedule is emitted when a binding is created.
	EventAddSchedule EventType = "ADD_SCHEDULE"
	// EventRemoveSchedule is emitted when a binding is removed.
	EventRemoveSchedule EventType = "REMOVE_SCHEDULE"
	// EventReschedule is emitted when a binding moves to a different date.
	// Same-day reorders deliberately emit nothing.
	EventReschedule EventType = "RESCHEDULE"
	// EventCreateContentItem is emitted when a content item is registered.
	EventCreateContentItem EventType = "CREATE_CONTENT_ITEM"
)

// Event is the structured analytics payload describing one lifecycle
// transition. The engine guarantees the fields; serialization and destination
// are the sink's concern.
type Event struct {
	Type EventType `json:"type"`
	// EventID uniquely identifies this event for analytics, independent of any
	// entity identity. It is generated by the engine at emission time.
	EventID uuid.UUID `json:"eventId"`
	// Status is the human-readable transition outcome: "added", "removed",
	// "rescheduled" or "created".
	Status string `json:"status"`

	// ScheduleID is the identifier of the live binding the event refers to.
	// Unset for removals and content-item creation.
	ScheduleID *uuid.UUID `json:"scheduleId,omitempty"`
	// OriginalScheduleID back-references the binding retired by a removal or a
	// cross-date reschedule, preserving analytics lineage.
	OriginalScheduleID *uuid.UUID `json:"originalScheduleId,omitempty"`

	Surface domain.Surface        `json:"surface,omitempty"`
	Date    domain.Date           `json:"date,omitempty"`
	Method  domain.ScheduleMethod `json:"method,omitempty"`

	// ContentItem is a snapshot of the item at the time of the transition.
	ContentItem *domain.ContentItem `json:"contentItem,omitempty"`

	// RemovalReasons and RemovalComment are only populated for removals on
	// surfaces that accept them. A blank comment is normalized to absent.
	RemovalReasons []string `json:"removalReasons,omitempty"`
	RemovalComment string   `json:"removalComment,omitempty"`
}

// EventSink receives lifecycle events for external analytics. Delivery is
// fire-and-forget from the engine's perspective: an Emit failure is logged and
// never fails or rolls back the state transition that produced the event.
//
//go:generate mockgen -package mockcuration -source=events.go -destination=mock/mocksink.go *
type EventSink interface {
	Emit(ctx context.Context, event Event) error
}
