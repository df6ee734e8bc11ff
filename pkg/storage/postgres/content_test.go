package postgres_test

import (
	"context"
	"errors"
	"testing"

	"curator/pkg/domain"
	"curator/pkg/storage"
	"curator/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestItem stores the domain row an item references and returns the item
// ready for insertion.
func newTestItem(t *testing.T, pg *postgres.PgSQL, url, domainName string) domain.ContentItem {
	t.Helper()
	_, err := pg.FindOrCreateDomain(context.Background(), domainName)
	require.NoError(t, err)

	return domain.ContentItem{
		URL:        url,
		DomainName: domainName,
		Title:      "A headline",
		CreatedBy:  "curator@example.com",
	}
}

func TestPgSQL_StoreContentItem(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	item := newTestItem(t, pgSQL, "https://example.com/a", "example.com")
	item.Excerpt = "An excerpt"
	item.Publisher = "Example News"

	stored, err := pgSQL.StoreContentItem(ctx, item)
	require.NoError(t, err)
	require.NotEqual(t, domain.ContentItemID(uuid.Nil), stored.ID)
	require.Equal(t, item.URL, stored.URL)
	require.Equal(t, "example.com", stored.DomainName)
	require.Equal(t, "An excerpt", stored.Excerpt)
	require.Equal(t, "Example News", stored.Publisher)
	require.False(t, stored.CreatedAt.IsZero())
}

func TestPgSQL_StoreContentItem_DuplicateURL(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	item := newTestItem(t, pgSQL, "https://example.com/a", "example.com")

	_, err := pgSQL.StoreContentItem(ctx, item)
	require.NoError(t, err)

	_, err = pgSQL.StoreContentItem(ctx, item)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrUniqueViolation)

	var uniqueErr *storage.UniqueViolationError
	require.ErrorAs(t, err, &uniqueErr)
	require.Equal(t, postgres.ConstraintContentItemURL, uniqueErr.Constraint)
}

func TestPgSQL_ContentItemByID(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	stored, err := pgSQL.StoreContentItem(ctx, newTestItem(t, pgSQL, "https://example.com/a", "example.com"))
	require.NoError(t, err)

	found, err := pgSQL.ContentItemByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, stored.ID, found.ID)
	require.Equal(t, stored.URL, found.URL)

	// absent id yields nil, not an error
	missing, err := pgSQL.ContentItemByID(ctx, domain.ContentItemID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_ContentItemByURL(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	stored, err := pgSQL.StoreContentItem(ctx, newTestItem(t, pgSQL, "https://example.com/a", "example.com"))
	require.NoError(t, err)

	found, err := pgSQL.ContentItemByURL(ctx, "https://example.com/a")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, stored.ID, found.ID)

	missing, err := pgSQL.ContentItemByURL(ctx, "https://example.com/other")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_StoreContentItem_UnknownDomainRejected(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	// the referenced domain row must exist
	_, err := pgSQL.StoreContentItem(context.Background(), domain.ContentItem{
		URL:        "https://orphan.example/a",
		DomainName: "orphan.example",
		Title:      "t",
		CreatedBy:  "c",
	})
	require.Error(t, err)
	require.False(t, errors.Is(err, storage.ErrUniqueViolation))
}
