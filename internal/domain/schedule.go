package domain

import (
	"fmt"
	"sort"
	"time"
)

const (
	// DateLayout is the canonical calendar-date form used as the map key
	// inside a month schedule.
	DateLayout = "2006-01-02"

	// MonthKeyLayout identifies one MonthSchedule per user.
	MonthKeyLayout = "2006-01"
)

// DayEntry is one calendar date's record inside a month schedule.
// Hours is always derived from StartTime/EndTime; it is never set
// independently of them.
type DayEntry struct {
	Date      string  `json:"date"`
	Working   bool    `json:"working"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes,omitempty"`
}

// NewDayEntry builds a hygienic DayEntry for the given date. A non-working
// day drops any supplied times and keeps hours at zero; a working day
// derives hours from the time pair.
func NewDayEntry(date string, working bool, startTime, endTime, notes string) (DayEntry, error) {
	if _, err := ParseDate(date); err != nil {
		return DayEntry{}, err
	}
	if !working {
		return DayEntry{Date: date, Notes: notes}, nil
	}
	hours, err := WorkedHours(startTime, endTime)
	if err != nil {
		return DayEntry{}, err
	}
	return DayEntry{
		Date:      date,
		Working:   true,
		StartTime: startTime,
		EndTime:   endTime,
		Hours:     hours,
		Notes:     notes,
	}, nil
}

// MonthSchedule maps every date of one calendar month to its entry. A
// schedule is always dense: exactly one entry per calendar day.
type MonthSchedule map[string]DayEntry

// NewMonthSchedule builds a dense, all-non-working schedule for the month.
func NewMonthSchedule(year int, month time.Month) (MonthSchedule, error) {
	if err := ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	days := DaysIn(year, month)
	schedule := make(MonthSchedule, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		schedule[date] = DayEntry{Date: date}
	}
	return schedule, nil
}

// Dates returns the schedule's date keys in calendar order.
func (s MonthSchedule) Dates() []string {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// DaysIn returns the number of calendar days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", date, ErrInvalidDate)
	}
	return t, nil
}

// ParseMonthKey splits a YYYY-MM key into its year and month.
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", key, ErrInvalidDate)
	}
	return t.Year(), t.Month(), nil
}

// MonthKey formats the YYYY-MM key for a year/month pair.
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(MonthKeyLayout)
}

// MonthKeyOf returns the YYYY-MM key owning the given date.
func MonthKeyOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(MonthKeyLayout), nil
}

// ValidateYearMonth rejects months outside 1-12 and years outside the
// range the tracker is willing to schedule.
func ValidateYearMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("month %d: %w", month, ErrInvalidDate)
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year %d: %w", year, ErrInvalidDate)
	}
	return nil
}

// TemplateSlot is one weekday's prescription inside a weekly template.
type TemplateSlot struct {
	Working   bool   `json:"working"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// WeeklyTemplate maps a weekday index (0=Sunday .. 6=Saturday, matching
// time.Weekday) to a slot. Days whose weekday has no slot are untouched
// when the template is applied.
type WeeklyTemplate map[int]TemplateSlot
