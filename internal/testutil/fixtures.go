package testutil

import (
	"time"

	"github.com/alexanderramin/smena/internal/domain"
	"github.com/google/uuid"
)

// RecordOption customizes a test work record.
type RecordOption func(*domain.WorkRecord)

// WithNotes sets the record's notes.
func WithNotes(notes string) RecordOption {
	return func(r *domain.WorkRecord) { r.Notes = notes }
}

// WithRecordedAt pins the record's timestamp.
func WithRecordedAt(at time.Time) RecordOption {
	return func(r *domain.WorkRecord) { r.RecordedAt = at }
}

// NewTestRecord builds a work record for the date with the given times,
// deriving the hour fields the same way the service does.
func NewTestRecord(date, start, end string, opts ...RecordOption) *domain.WorkRecord {
	hours, minutes, total, err := domain.SplitHoursMinutes(start, end)
	if err != nil {
		panic(err)
	}
	r := &domain.WorkRecord{
		ID:           uuid.New().String(),
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: total,
		RecordedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestDay builds a hygienic working day entry.
func NewTestDay(date, start, end string) domain.DayEntry {
	entry, err := domain.NewDayEntry(date, true, start, end, "")
	if err != nil {
		panic(err)
	}
	return entry
}

// FixedClock returns a clock function pinned to the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
