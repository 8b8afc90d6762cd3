package repository

import (
	"context"

	"github.com/alexanderramin/smena/internal/domain"
)

// ScheduleRepo persists the dense per-user month maps. A month exists iff
// its day rows exist; creation always inserts the full calendar in one
// transaction so a schedule is never partially present.
type ScheduleRepo interface {
	// CountDays reports how many day rows exist for the user's month.
	CountDays(ctx context.Context, userID int64, monthKey string) (int, error)
	// InsertDays bulk-inserts pre-populated entries for a fresh month.
	InsertDays(ctx context.Context, userID int64, entries []domain.DayEntry) error
	// GetMonth loads the full date->entry map for the month key.
	GetMonth(ctx context.Context, userID int64, monthKey string) (domain.MonthSchedule, error)
	// GetDay loads a single entry.
	GetDay(ctx context.Context, userID int64, date string) (*domain.DayEntry, error)
	// UpsertDay stores the entry keyed by (user, date), last write wins.
	UpsertDay(ctx context.Context, userID int64, entry domain.DayEntry) error
}

// RecordRepo persists the flat per-user work-record log, unique by date.
type RecordRepo interface {
	// Upsert stores the record, replacing any record the user already has
	// for the same date.
	Upsert(ctx context.Context, userID int64, record *domain.WorkRecord) error
	// ListByUser returns all records in date order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.WorkRecord, error)
	// GetByDate loads the record for one date.
	GetByDate(ctx context.Context, userID int64, date string) (*domain.WorkRecord, error)
	// DeleteByDate removes the record for one date.
	DeleteByDate(ctx context.Context, userID int64, date string) error
}
