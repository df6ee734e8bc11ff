package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentItemID uniquely identifies a curated content item.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ContentItemID uuid.UUID

// ContentItem represents a single curated piece of content. There is never
// more than one live item per canonical URL; the URL is normalized before the
// item is stored.
type ContentItem struct {
	// ID is the unique identifier of the content item.
	ID ContentItemID `json:"id"`

	// URL is the canonical, normalized address of the content.
	URL string `json:"url"`
	// DomainName is the hostname derived from URL at creation time.
	DomainName string `json:"domainName"`

	// Title and Excerpt are editorial metadata carried through unchanged.
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	// Publisher is the display name of the content's publisher.
	Publisher string `json:"publisher,omitempty"`

	// CreatedBy identifies the actor (curator or pipeline) that created the item.
	CreatedBy string `json:"createdBy"`
	// UpdatedBy identifies the actor that last modified the item.
	UpdatedBy string `json:"updatedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Domain is a normalized hostname shared by all content items whose URLs live
// under it. It is created lazily the first time a content item on that
// hostname is registered.
type Domain struct {
	// Name is the normalized hostname and the unique key of the record.
	Name string `json:"name"`
	// Trusted is set once the domain has been scheduled for an already-elapsed
	// date. The transition is one-way; a trusted domain is never demoted.
	Trusted bool `json:"trusted"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
