package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthSchedule_Dense(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
	} {
		schedule, err := NewMonthSchedule(tc.year, tc.month)
		require.NoError(t, err)
		assert.Len(t, schedule, tc.days, "%d-%d", tc.year, tc.month)
	}
}

func TestNewMonthSchedule_AllDaysStartNonWorking(t *testing.T) {
	schedule, err := NewMonthSchedule(2024, time.May)
	require.NoError(t, err)

	for date, entry := range schedule {
		assert.False(t, entry.Working, date)
		assert.Zero(t, entry.Hours, date)
		assert.Equal(t, date, entry.Date)
	}
}

func TestNewMonthSchedule_RejectsOutOfRangeYear(t *testing.T) {
	_, err := NewMonthSchedule(1999, time.May)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewMonthSchedule(2101, time.May)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMonthSchedule_DatesSorted(t *testing.T) {
	schedule, err := NewMonthSchedule(2024, time.May)
	require.NoError(t, err)

	dates := schedule.Dates()
	require.Len(t, dates, 31)
	assert.Equal(t, "2024-05-01", dates[0])
	assert.Equal(t, "2024-05-31", dates[30])
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
	}
}

func TestNewDayEntry_WorkingDerivesHours(t *testing.T) {
	entry, err := NewDayEntry("2024-05-22", true, "09:00", "18:30", "shift")
	require.NoError(t, err)
	assert.True(t, entry.Working)
	assert.Equal(t, 9.5, entry.Hours)
	assert.Equal(t, "shift", entry.Notes)
}

func TestNewDayEntry_NonWorkingDropsTimes(t *testing.T) {
	entry, err := NewDayEntry("2024-05-22", false, "09:00", "18:30", "Выходной")
	require.NoError(t, err)
	assert.False(t, entry.Working)
	assert.Empty(t, entry.StartTime)
	assert.Empty(t, entry.EndTime)
	assert.Zero(t, entry.Hours)
	assert.Equal(t, "Выходной", entry.Notes)
}

func TestNewDayEntry_InvalidDate(t *testing.T) {
	_, err := NewDayEntry("22.05.2024", true, "09:00", "18:00", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewDayEntry_InvalidTime(t *testing.T) {
	_, err := NewDayEntry("2024-05-22", true, "09:00", "25:00", "")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestMonthKeyRoundTrip(t *testing.T) {
	key := MonthKey(2024, time.May)
	assert.Equal(t, "2024-05", key)

	year, month, err := ParseMonthKey(key)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.May, month)
}

func TestMonthKeyOf(t *testing.T) {
	key, err := MonthKeyOf("2024-05-22")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", key)

	_, err = MonthKeyOf("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
