package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_FindOrCreateDomain(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	created, err := pgSQL.FindOrCreateDomain(ctx, "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", created.Name)
	require.False(t, created.Trusted)
	require.False(t, created.CreatedAt.IsZero())

	// second call finds the existing row instead of inserting
	found, err := pgSQL.FindOrCreateDomain(ctx, "example.com")
	require.NoError(t, err)
	require.Equal(t, created.Name, found.Name)
	require.Equal(t, created.CreatedAt, found.CreatedAt)
}

func TestPgSQL_DomainByName(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	missing, err := pgSQL.DomainByName(ctx, "nowhere.example")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = pgSQL.FindOrCreateDomain(ctx, "example.com")
	require.NoError(t, err)

	found, err := pgSQL.DomainByName(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "example.com", found.Name)
}

func TestPgSQL_MarkDomainTrusted(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.FindOrCreateDomain(ctx, "example.com")
	require.NoError(t, err)

	require.NoError(t, pgSQL.MarkDomainTrusted(ctx, "example.com"))

	trusted, err := pgSQL.DomainByName(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, trusted.Trusted)
	require.False(t, trusted.UpdatedAt.IsZero())

	// promoting again is a no-op, not an error
	require.NoError(t, pgSQL.MarkDomainTrusted(ctx, "example.com"))

	// unknown domain is a no-op as well
	require.NoError(t, pgSQL.MarkDomainTrusted(ctx, "nowhere.example"))
}
