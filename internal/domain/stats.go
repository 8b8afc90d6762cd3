package domain

import (
	"math"
	"time"
)

// MonthStats summarizes one populated month schedule.
type MonthStats struct {
	WorkingDays  int     `json:"workingDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}

// ComputeMonthStats counts working days and sums derived hours across the
// schedule. The average is zero when no day is marked working.
func ComputeMonthStats(schedule MonthSchedule) MonthStats {
	var stats MonthStats
	for _, entry := range schedule {
		if entry.Working {
			stats.WorkingDays++
		}
		stats.TotalHours += entry.Hours
	}
	stats.TotalHours = Round1(stats.TotalHours)
	if stats.WorkingDays > 0 {
		stats.AverageHours = Round1(stats.TotalHours / float64(stats.WorkingDays))
	}
	return stats
}

// RecordSummary aggregates a filtered slice of work records.
type RecordSummary struct {
	TotalHours   int     `json:"totalHours"`
	TotalRecords int     `json:"totalRecords"`
	DailyAverage float64 `json:"dailyAverage"`
}

// Summarize totals a record list. TotalHours floors the fractional sum,
// matching how the tracker has always reported it.
func Summarize(records []*WorkRecord) RecordSummary {
	var sum float64
	for _, r := range records {
		sum += r.DecimalHours()
	}
	summary := RecordSummary{
		TotalHours:   int(math.Floor(sum)),
		TotalRecords: len(records),
	}
	if len(records) > 0 {
		summary.DailyAverage = Round1(sum / float64(len(records)))
	}
	return summary
}

// FilterByPeriod keeps records dated on or after the period cutoff,
// measured back from now. PeriodAll is the identity.
func FilterByPeriod(records []*WorkRecord, period Period, now time.Time) []*WorkRecord {
	if period == PeriodAll || period == "" {
		return records
	}
	var cutoff time.Time
	switch period {
	case PeriodWeek:
		cutoff = now.AddDate(0, 0, -7)
	case PeriodMonth:
		cutoff = now.AddDate(0, -1, 0)
	case PeriodYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return records
	}
	cutoffDate := cutoff.Format(DateLayout)
	filtered := make([]*WorkRecord, 0, len(records))
	for _, r := range records {
		if r.Date >= cutoffDate {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByMonth keeps records whose date falls inside the given month.
func FilterByMonth(records []*WorkRecord, year int, month time.Month) []*WorkRecord {
	key := MonthKey(year, month)
	filtered := make([]*WorkRecord, 0, len(records))
	for _, r := range records {
		if len(r.Date) >= len(key) && r.Date[:len(key)] == key {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
