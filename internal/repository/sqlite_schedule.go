package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/smena/internal/db"
	"github.com/alexanderramin/smena/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo on the month_days table.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a ScheduleRepo bound to the given database
// or transaction handle.
func NewSQLiteScheduleRepo(dbtx db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: dbtx}
}

func (r *SQLiteScheduleRepo) CountDays(ctx context.Context, userID int64, monthKey string) (int, error) {
	query := `SELECT COUNT(*) FROM month_days WHERE user_id = ? AND date LIKE ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, monthKey+"-%").Scan(&count); err != nil {
		return 0, storageErr("counting month days", err)
	}
	return count, nil
}

func (r *SQLiteScheduleRepo) InsertDays(ctx context.Context, userID int64, entries []domain.DayEntry) error {
	query := `INSERT INTO month_days (user_id, date, working, start_time, end_time, hours, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	for _, e := range entries {
		_, err := r.db.ExecContext(ctx, query,
			userID, e.Date, boolToInt(e.Working), e.StartTime, e.EndTime, e.Hours, e.Notes, now,
		)
		if err != nil {
			return storageErr(fmt.Sprintf("inserting day %s", e.Date), err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetMonth(ctx context.Context, userID int64, monthKey string) (domain.MonthSchedule, error) {
	query := `SELECT date, working, start_time, end_time, hours, notes
		FROM month_days WHERE user_id = ? AND date LIKE ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, monthKey+"-%")
	if err != nil {
		return nil, storageErr(fmt.Sprintf("loading month %s", monthKey), err)
	}
	defer rows.Close()

	schedule := make(domain.MonthSchedule)
	for rows.Next() {
		var e domain.DayEntry
		var working int
		if err := rows.Scan(&e.Date, &working, &e.StartTime, &e.EndTime, &e.Hours, &e.Notes); err != nil {
			return nil, storageErr("scanning day row", err)
		}
		e.Working = intToBool(working)
		schedule[e.Date] = e
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating month days", err)
	}
	return schedule, nil
}

func (r *SQLiteScheduleRepo) GetDay(ctx context.Context, userID int64, date string) (*domain.DayEntry, error) {
	query := `SELECT date, working, start_time, end_time, hours, notes
		FROM month_days WHERE user_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, date)

	var e domain.DayEntry
	var working int
	if err := row.Scan(&e.Date, &working, &e.StartTime, &e.EndTime, &e.Hours, &e.Notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("day entry: %w", ErrNotFound)
		}
		return nil, storageErr("scanning day entry", err)
	}
	e.Working = intToBool(working)
	return &e, nil
}

func (r *SQLiteScheduleRepo) UpsertDay(ctx context.Context, userID int64, entry domain.DayEntry) error {
	query := `INSERT INTO month_days (user_id, date, working, start_time, end_time, hours, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			working = excluded.working,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			hours = excluded.hours,
			notes = excluded.notes,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		userID, entry.Date, boolToInt(entry.Working), entry.StartTime, entry.EndTime,
		entry.Hours, entry.Notes, nowUTC(),
	)
	if err != nil {
		return storageErr(fmt.Sprintf("upserting day %s", entry.Date), err)
	}
	return nil
}
