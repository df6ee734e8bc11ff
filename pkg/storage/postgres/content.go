package postgres

import (
	"context"
	"fmt"

	"curator/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	contentItemsTable = "content_items"
)

func (p *PgSQL) StoreContentItem(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	var row PgContentItem
	row.FromDomain(item)

	var result PgContentItem
	found, err := p.Builder.Insert(contentItemsTable).
		Rows(row).
		Returning(&PgContentItem{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, translateError(err, "could not store content item into pg")
	}
	if !found {
		return nil, fmt.Errorf("insert content item returned no row")
	}

	return result.ToDomain(), nil
}

// ContentItemByID returns a content item by its ID, or nil when absent.
func (p *PgSQL) ContentItemByID(ctx context.Context, id domain.ContentItemID) (*domain.ContentItem, error) {
	var row PgContentItem
	found, err := p.Builder.From(contentItemsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch content item by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ContentItemByURL returns a content item by its canonical URL, or nil when absent.
func (p *PgSQL) ContentItemByURL(ctx context.Context, url string) (*domain.ContentItem, error) {
	var row PgContentItem
	found, err := p.Builder.From(contentItemsTable).
		Where(goqu.I("url").Eq(url)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch content item by url: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
