package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryDB(t *testing.T) *SQLiteUnitOfWork {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteUnitOfWork(database)
}

func TestWithinTx_Commits(t *testing.T) {
	uow := newMemoryDB(t)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO month_days (user_id, date, working, start_time, end_time, hours, notes, updated_at)
			 VALUES (1, '2024-05-22', 1, '09:00', '18:00', 9.0, '', '2024-05-22T12:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, uow.db.QueryRow(`SELECT COUNT(*) FROM month_days`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow := newMemoryDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, execErr := tx.ExecContext(ctx,
			`INSERT INTO month_days (user_id, date, working, start_time, end_time, hours, notes, updated_at)
			 VALUES (1, '2024-05-22', 1, '09:00', '18:00', 9.0, '', '2024-05-22T12:00:00Z')`)
		require.NoError(t, execErr)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, uow.db.QueryRow(`SELECT COUNT(*) FROM month_days`).Scan(&count))
	assert.Zero(t, count)
}

func TestOpenDB_MigratesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"month_days", "work_records"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}
