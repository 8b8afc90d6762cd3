package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. Every statement is idempotent so
// the whole list can re-run on startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS month_days (
		user_id    INTEGER NOT NULL,
		date       TEXT    NOT NULL,
		working    INTEGER NOT NULL DEFAULT 0,
		start_time TEXT    NOT NULL DEFAULT '',
		end_time   TEXT    NOT NULL DEFAULT '',
		hours      REAL    NOT NULL DEFAULT 0,
		notes      TEXT    NOT NULL DEFAULT '',
		updated_at TEXT    NOT NULL,
		PRIMARY KEY (user_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_month_days_user ON month_days(user_id)`,

	`CREATE TABLE IF NOT EXISTS work_records (
		id            TEXT PRIMARY KEY,
		user_id       INTEGER NOT NULL,
		date          TEXT    NOT NULL,
		start_time    TEXT    NOT NULL,
		end_time      TEXT    NOT NULL,
		hours         INTEGER NOT NULL,
		minutes       INTEGER NOT NULL,
		total_minutes INTEGER NOT NULL,
		notes         TEXT    NOT NULL DEFAULT '',
		recorded_at   TEXT    NOT NULL,
		UNIQUE (user_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_records_user_date ON work_records(user_id, date)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
