package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/smena/internal/db"
	"github.com/alexanderramin/smena/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo on the work_records table.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a RecordRepo bound to the given database or
// transaction handle.
func NewSQLiteRecordRepo(dbtx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: dbtx}
}

func (r *SQLiteRecordRepo) Upsert(ctx context.Context, userID int64, record *domain.WorkRecord) error {
	// The log is unique by (user, date): a fresh record replaces the old
	// one wholesale, including its id.
	del := `DELETE FROM work_records WHERE user_id = ? AND date = ?`
	if _, err := r.db.ExecContext(ctx, del, userID, record.Date); err != nil {
		return storageErr(fmt.Sprintf("clearing old record for %s", record.Date), err)
	}

	ins := `INSERT INTO work_records (id, user_id, date, start_time, end_time, hours, minutes, total_minutes, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, ins,
		record.ID,
		userID,
		record.Date,
		record.StartTime,
		record.EndTime,
		record.Hours,
		record.Minutes,
		record.TotalMinutes,
		record.Notes,
		record.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return storageErr("inserting work record", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.WorkRecord, error) {
	query := `SELECT id, date, start_time, end_time, hours, minutes, total_minutes, notes, recorded_at
		FROM work_records WHERE user_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storageErr("listing work records", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteRecordRepo) GetByDate(ctx context.Context, userID int64, date string) (*domain.WorkRecord, error) {
	query := `SELECT id, date, start_time, end_time, hours, minutes, total_minutes, notes, recorded_at
		FROM work_records WHERE user_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, date)

	var rec domain.WorkRecord
	var recordedAtStr string
	err := row.Scan(
		&rec.ID, &rec.Date, &rec.StartTime, &rec.EndTime,
		&rec.Hours, &rec.Minutes, &rec.TotalMinutes, &rec.Notes, &recordedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work record: %w", ErrNotFound)
		}
		return nil, storageErr("scanning work record", err)
	}
	if rec.RecordedAt, err = time.Parse(time.RFC3339, recordedAtStr); err != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", err)
	}
	return &rec, nil
}

func (r *SQLiteRecordRepo) DeleteByDate(ctx context.Context, userID int64, date string) error {
	query := `DELETE FROM work_records WHERE user_id = ? AND date = ?`
	if _, err := r.db.ExecContext(ctx, query, userID, date); err != nil {
		return storageErr("deleting work record", err)
	}
	return nil
}

// scanRecords scans multiple records from *sql.Rows.
func (r *SQLiteRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.WorkRecord, error) {
	var records []*domain.WorkRecord
	for rows.Next() {
		var rec domain.WorkRecord
		var recordedAtStr string
		err := rows.Scan(
			&rec.ID, &rec.Date, &rec.StartTime, &rec.EndTime,
			&rec.Hours, &rec.Minutes, &rec.TotalMinutes, &rec.Notes, &recordedAtStr,
		)
		if err != nil {
			return nil, storageErr("scanning record row", err)
		}
		if rec.RecordedAt, err = time.Parse(time.RFC3339, recordedAtStr); err != nil {
			return nil, fmt.Errorf("parsing recorded_at: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating records", err)
	}
	return records, nil
}
