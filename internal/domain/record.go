package domain

import "time"

// WorkRecord is a single logged work session in the flat per-user log.
// The log is unique by date: recording a date that already holds a record
// replaces it (intentional last-write-wins upsert).
type WorkRecord struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Hours        int       `json:"hours"`
	Minutes      int       `json:"minutes"`
	TotalMinutes int       `json:"totalMinutes"`
	Notes        string    `json:"notes,omitempty"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// DecimalHours returns the record's worked time as fractional hours.
func (r *WorkRecord) DecimalHours() float64 {
	return float64(r.Hours) + float64(r.Minutes)/60
}

// Period is a relative window used to filter work records for statistics.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ValidPeriods is the canonical set of accepted period strings.
var ValidPeriods = map[Period]bool{
	PeriodWeek: true, PeriodMonth: true, PeriodYear: true, PeriodAll: true,
}
