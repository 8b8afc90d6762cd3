package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/smena/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	recordedAt := time.Date(2024, time.May, 22, 19, 0, 0, 0, time.UTC)
	rec := testutil.NewTestRecord("2024-05-22", "09:00", "18:30",
		testutil.WithNotes("смена"),
		testutil.WithRecordedAt(recordedAt),
	)
	require.NoError(t, repo.Upsert(ctx, 1, rec))

	fetched, err := repo.GetByDate(ctx, 1, "2024-05-22")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, fetched.ID)
	assert.Equal(t, 9, fetched.Hours)
	assert.Equal(t, 30, fetched.Minutes)
	assert.Equal(t, 570, fetched.TotalMinutes)
	assert.Equal(t, "смена", fetched.Notes)
	assert.True(t, recordedAt.Equal(fetched.RecordedAt))
}

func TestRecordRepo_UpsertReplacesSameDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	first := testutil.NewTestRecord("2024-05-22", "09:00", "18:00")
	require.NoError(t, repo.Upsert(ctx, 1, first))

	second := testutil.NewTestRecord("2024-05-22", "10:00", "20:00")
	require.NoError(t, repo.Upsert(ctx, 1, second))

	all, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, "10:00", all[0].StartTime)
}

func TestRecordRepo_ListByUser_SortedAndScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, testutil.NewTestRecord("2024-05-22", "09:00", "18:00")))
	require.NoError(t, repo.Upsert(ctx, 1, testutil.NewTestRecord("2024-05-20", "09:00", "18:00")))
	require.NoError(t, repo.Upsert(ctx, 2, testutil.NewTestRecord("2024-05-21", "09:00", "18:00")))

	all, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-05-20", all[0].Date)
	assert.Equal(t, "2024-05-22", all[1].Date)
}

func TestRecordRepo_GetByDate_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)

	_, err := repo.GetByDate(context.Background(), 1, "2024-05-22")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRepo_DeleteByDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, testutil.NewTestRecord("2024-05-22", "09:00", "18:00")))
	require.NoError(t, repo.DeleteByDate(ctx, 1, "2024-05-22"))

	_, err := repo.GetByDate(ctx, 1, "2024-05-22")
	assert.ErrorIs(t, err, ErrNotFound)
}
