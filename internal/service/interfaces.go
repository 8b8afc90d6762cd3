package service

import (
	"context"
	"time"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
)

// ScheduleService owns the canonical per-user month maps.
type ScheduleService interface {
	// GetOrCreateMonth returns the user's month schedule, synthesizing a
	// dense all-non-working month on first access. Idempotent.
	GetOrCreateMonth(ctx context.Context, userID int64, year int, month time.Month) (domain.MonthSchedule, error)
	// MonthView returns the month overlaid with logged work records plus
	// derived statistics.
	MonthView(ctx context.Context, req contract.MonthRequest) (*contract.MonthResponse, error)
	// SetDay upserts one day entry, creating the owning month if needed.
	SetDay(ctx context.Context, req contract.SetDayRequest) (*domain.DayEntry, error)
	// ApplyTemplate overwrites every day whose weekday has a template
	// slot. The month must already be initialized.
	ApplyTemplate(ctx context.Context, req contract.ApplyTemplateRequest) (domain.MonthSchedule, error)
}

// RecordService owns the flat work-record log, a projection of the
// canonical month maps kept in the same transaction.
type RecordService interface {
	// RecordHours upserts the record for the date and mirrors the day
	// into the month schedule.
	RecordHours(ctx context.Context, req contract.RecordHoursRequest) (*domain.WorkRecord, error)
	// Stats filters the log by period and summarizes it.
	Stats(ctx context.Context, req contract.StatsRequest) (*contract.StatsResponse, error)
}

// CommandService routes parsed free-text intents to the store operations.
type CommandService interface {
	Execute(ctx context.Context, req contract.CommandRequest) (*contract.CommandOutcome, error)
}
