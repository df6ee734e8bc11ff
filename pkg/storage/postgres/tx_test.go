package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"curator/pkg/storage"
	"curator/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countDomains(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM domains WHERE domain_name = $1`, name)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit persists the inserted domain
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.FindOrCreateDomain(ctx, "committed.example")
	require.NoError(t, err)

	require.NoError(t, txStorage.Commit())

	// Verify persistence outside tx
	require.Equal(t, 1, countDomains(t, db, "committed.example"))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback discards the inserted domain
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.FindOrCreateDomain(ctx, "discarded.example")
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	// Verify no persistence outside tx
	require.Equal(t, 0, countDomains(t, db, "discarded.example"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.FindOrCreateDomain(ctx, "kept.example")

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countDomains(t, db, "kept.example"))

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.FindOrCreateDomain(ctx, "dropped.example")

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countDomains(t, db, "dropped.example"))
}
