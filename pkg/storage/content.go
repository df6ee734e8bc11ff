package storage

import (
	"context"

	"curator/pkg/domain"
)

// ContentStorage defines CRUD operations for curated content items.
type ContentStorage interface {
	// StoreContentItem inserts a new content item and returns the stored row as
	// it exists in the database (including generated fields). A uniqueness
	// violation on the canonical URL is reported as a *UniqueViolationError.
	StoreContentItem(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	// ContentItemByID fetches a content item by its ID. Returns nil when not found.
	ContentItemByID(ctx context.Context, id domain.ContentItemID) (*domain.ContentItem, error)
	// ContentItemByURL fetches a content item by its canonical URL. Returns nil
	// when not found.
	ContentItemByURL(ctx context.Context, url string) (*domain.ContentItem, error)
}

// DomainStorage defines operations on content domains.
//
// FindOrCreateDomain is deliberately implemented as a select followed by a
// plain insert rather than an upsert: two writers registering the same new
// domain concurrently must surface a *UniqueViolationError to exactly one of
// them, which the caller resolves by retrying (the next attempt finds the
// now-existing row). An upsert would hide the race but also hide legitimate
// insert failures behind backend-specific conflict semantics.
type DomainStorage interface {
	// FindOrCreateDomain ensures a domain row with the given name exists and
	// returns it.
	FindOrCreateDomain(ctx context.Context, name string) (*domain.Domain, error)
	// DomainByName fetches a domain by its name. Returns nil when not found.
	DomainByName(ctx context.Context, name string) (*domain.Domain, error)
	// MarkDomainTrusted sets the domain's trusted flag. The operation is
	// idempotent and never unsets the flag.
	MarkDomainTrusted(ctx context.Context, name string) error
}
