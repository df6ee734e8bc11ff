package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleID uniquely identifies a scheduled binding.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScheduleID uuid.UUID

// Surface identifies a destination slot for curated content, e.g. a regional
// new-tab feed. The set of recognized surfaces is defined by the curation
// engine.
type Surface string

// ScheduleMethod records how a binding was created.
type ScheduleMethod string

const (
	// ScheduleMethodManual indicates a human curator created the binding.
	ScheduleMethodManual ScheduleMethod = "MANUAL"
	// ScheduleMethodML indicates the automated pipeline created the binding.
	ScheduleMethodML ScheduleMethod = "ML"
)

// Valid reports whether m is a recognized schedule method.
func (m ScheduleMethod) Valid() bool {
	return m == ScheduleMethodManual || m == ScheduleMethodML
}

// Schedule is the binding of one content item to one surface for one calendar
// date. At most one live Schedule exists for a given (content item, surface,
// date) triple; the storage layer enforces this with a composite uniqueness
// constraint.
type Schedule struct {
	// ID is the unique identifier of the binding.
	ID ScheduleID `json:"id"`
	// ContentItemID references the scheduled content item.
	ContentItemID ContentItemID `json:"contentItemId"`

	// Surface is the destination slot the item is placed on.
	Surface Surface `json:"surface"`
	// Date is the calendar date the item is scheduled for.
	Date Date `json:"date"`
	// Method records whether the binding was created manually or by the pipeline.
	Method ScheduleMethod `json:"method"`

	// CreatedBy identifies the actor that created the binding.
	CreatedBy string `json:"createdBy"`
	// UpdatedBy identifies the actor that last modified the binding.
	UpdatedBy string `json:"updatedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewMark records that a human has reviewed the full schedule of a
// (surface, date) pair. At most one mark exists per pair.
type ReviewMark struct {
	Surface Surface `json:"surface"`
	Date    Date    `json:"date"`

	// ReviewedBy identifies the reviewing curator.
	ReviewedBy string    `json:"reviewedBy"`
	ReviewedAt time.Time `json:"reviewedAt"`
}
