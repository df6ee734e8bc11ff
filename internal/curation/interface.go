package curation

import (
	"context"

	"curator/pkg/domain"
)

// CreateContentItemInput carries the fields for registering a content item.
type CreateContentItemInput struct {
	// URL is the address of the content; it is normalized before storage.
	URL string
	// Title is the editorial headline. Required.
	Title string
	// Excerpt and Publisher are optional editorial metadata.
	Excerpt   string
	Publisher string
	// CreatedBy identifies the acting curator or pipeline.
	CreatedBy string
}

// ScheduleInput carries the fields for placing an item on a surface slot.
type ScheduleInput struct {
	ContentItemID domain.ContentItemID
	Surface       domain.Surface
	Date          domain.Date
	Method        domain.ScheduleMethod
	CreatedBy     string
}

// UnscheduleInput carries the fields for removing a binding.
type UnscheduleInput struct {
	ID domain.ScheduleID
	// Reasons and Comment are curator-provided removal context, only meaningful
	// for surfaces that accept them.
	Reasons   []string
	Comment   string
	RemovedBy string
}

// RescheduleInput carries the fields for moving a binding to another date.
type RescheduleInput struct {
	ID        domain.ScheduleID
	NewDate   domain.Date
	Method    domain.ScheduleMethod
	UpdatedBy string
}

// MarkReviewedInput carries the fields for marking a schedule reviewed.
type MarkReviewedInput struct {
	Surface    domain.Surface
	Date       domain.Date
	ReviewedBy string
}

// Curator is the scheduling lifecycle engine exposed to the transport layer.
//
//go:generate mockgen -package mockcuration -source=interface.go -destination=mock/mockcuration.go *
type Curator interface {
	// CreateContentItem registers a curated content item, lazily creating its
	// domain. A concurrent-registration race on a new domain is retried
	// transparently.
	CreateContentItem(ctx context.Context, input CreateContentItemInput) (*domain.ContentItem, error)

	// Schedule places a content item on a (surface, date) slot.
	Schedule(ctx context.Context, input ScheduleInput) (*domain.Schedule, error)
	// Unschedule removes a binding.
	Unschedule(ctx context.Context, input UnscheduleInput) (*domain.Schedule, error)
	// Reschedule moves a binding to a new date. Moving to the binding's current
	// date is an in-place touch that keeps the identifier and emits no event.
	Reschedule(ctx context.Context, input RescheduleInput) (*domain.Schedule, error)

	// MarkReviewed records that a human reviewed the full (surface, date)
	// schedule.
	MarkReviewed(ctx context.Context, input MarkReviewedInput) (*domain.ReviewMark, error)
	// ScheduleFor lists the live bindings of a (surface, date) pair.
	ScheduleFor(ctx context.Context, surface domain.Surface, date domain.Date) ([]domain.Schedule, error)
}
