package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(date, start, end string) *WorkRecord {
	hours, minutes, total, err := SplitHoursMinutes(start, end)
	if err != nil {
		panic(err)
	}
	return &WorkRecord{
		ID: date, Date: date,
		StartTime: start, EndTime: end,
		Hours: hours, Minutes: minutes, TotalMinutes: total,
	}
}

func TestComputeMonthStats(t *testing.T) {
	schedule, err := NewMonthSchedule(2024, time.May)
	require.NoError(t, err)

	for _, date := range []string{"2024-05-06", "2024-05-07"} {
		entry, err := NewDayEntry(date, true, "09:00", "18:30", "")
		require.NoError(t, err)
		schedule[date] = entry
	}

	stats := ComputeMonthStats(schedule)
	assert.Equal(t, 2, stats.WorkingDays)
	assert.Equal(t, 19.0, stats.TotalHours)
	assert.Equal(t, 9.5, stats.AverageHours)
}

func TestComputeMonthStats_EmptyMonth(t *testing.T) {
	schedule, err := NewMonthSchedule(2024, time.May)
	require.NoError(t, err)

	stats := ComputeMonthStats(schedule)
	assert.Zero(t, stats.WorkingDays)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.AverageHours)
}

func TestSummarize(t *testing.T) {
	records := []*WorkRecord{
		record("2024-05-20", "09:00", "18:30"), // 9.5h
		record("2024-05-21", "10:00", "18:00"), // 8h
	}

	summary := Summarize(records)
	assert.Equal(t, 2, summary.TotalRecords)
	// 17.5 floors to 17.
	assert.Equal(t, 17, summary.TotalHours)
	assert.Equal(t, 8.8, summary.DailyAverage)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.TotalRecords)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.DailyAverage)
}

func TestFilterByPeriod(t *testing.T) {
	now := time.Date(2024, time.May, 22, 12, 0, 0, 0, time.UTC)
	records := []*WorkRecord{
		record("2024-05-20", "09:00", "18:00"),
		record("2024-05-10", "09:00", "18:00"),
		record("2024-01-15", "09:00", "18:00"),
		record("2022-05-20", "09:00", "18:00"),
	}

	week := FilterByPeriod(records, PeriodWeek, now)
	require.Len(t, week, 1)
	assert.Equal(t, "2024-05-20", week[0].Date)

	month := FilterByPeriod(records, PeriodMonth, now)
	assert.Len(t, month, 2)

	year := FilterByPeriod(records, PeriodYear, now)
	assert.Len(t, year, 3)

	all := FilterByPeriod(records, PeriodAll, now)
	assert.Len(t, all, 4)
}

func TestFilterByPeriod_CutoffDateInclusive(t *testing.T) {
	now := time.Date(2024, time.May, 22, 12, 0, 0, 0, time.UTC)
	records := []*WorkRecord{record("2024-05-15", "09:00", "18:00")}

	// Exactly seven days back stays in the window.
	assert.Len(t, FilterByPeriod(records, PeriodWeek, now), 1)
}

func TestFilterByMonth(t *testing.T) {
	records := []*WorkRecord{
		record("2024-05-20", "09:00", "18:00"),
		record("2024-05-01", "09:00", "18:00"),
		record("2024-04-30", "09:00", "18:00"),
	}

	filtered := FilterByMonth(records, 2024, time.May)
	require.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Equal(t, "2024-05", r.Date[:7])
	}
}

func TestWorkRecord_DecimalHours(t *testing.T) {
	r := record("2024-05-20", "09:00", "18:30")
	assert.Equal(t, 9.5, r.DecimalHours())
}
