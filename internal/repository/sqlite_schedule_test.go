package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/smena/internal/domain"
	"github.com/alexanderramin/smena/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertMonth(t *testing.T, repo *SQLiteScheduleRepo, userID int64, year int, month time.Month) {
	t.Helper()
	schedule, err := domain.NewMonthSchedule(year, month)
	require.NoError(t, err)
	entries := make([]domain.DayEntry, 0, len(schedule))
	for _, date := range schedule.Dates() {
		entries = append(entries, schedule[date])
	}
	require.NoError(t, repo.InsertDays(context.Background(), userID, entries))
}

func TestScheduleRepo_InsertAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	count, err := repo.CountDays(ctx, 1, "2024-05")
	require.NoError(t, err)
	assert.Zero(t, count)

	insertMonth(t, repo, 1, 2024, time.May)

	count, err = repo.CountDays(ctx, 1, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, 31, count)

	// Other users and months stay empty.
	count, err = repo.CountDays(ctx, 2, "2024-05")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountDays(ctx, 1, "2024-06")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScheduleRepo_GetMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	insertMonth(t, repo, 1, 2024, time.February)

	month, err := repo.GetMonth(ctx, 1, "2024-02")
	require.NoError(t, err)
	assert.Len(t, month, 29)
	entry, ok := month["2024-02-15"]
	require.True(t, ok)
	assert.False(t, entry.Working)
}

func TestScheduleRepo_UpsertDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	insertMonth(t, repo, 1, 2024, time.May)

	working := testutil.NewTestDay("2024-05-22", "09:00", "18:30")
	require.NoError(t, repo.UpsertDay(ctx, 1, working))

	fetched, err := repo.GetDay(ctx, 1, "2024-05-22")
	require.NoError(t, err)
	assert.True(t, fetched.Working)
	assert.Equal(t, "09:00", fetched.StartTime)
	assert.Equal(t, "18:30", fetched.EndTime)
	assert.Equal(t, 9.5, fetched.Hours)

	// A second upsert overwrites in place; the month stays dense.
	off, err := domain.NewDayEntry("2024-05-22", false, "", "", "Выходной")
	require.NoError(t, err)
	require.NoError(t, repo.UpsertDay(ctx, 1, off))

	fetched, err = repo.GetDay(ctx, 1, "2024-05-22")
	require.NoError(t, err)
	assert.False(t, fetched.Working)
	assert.Empty(t, fetched.StartTime)
	assert.Equal(t, "Выходной", fetched.Notes)

	count, err := repo.CountDays(ctx, 1, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, 31, count)
}

func TestScheduleRepo_GetDay_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)

	_, err := repo.GetDay(context.Background(), 1, "2024-05-22")
	assert.ErrorIs(t, err, ErrNotFound)
}
