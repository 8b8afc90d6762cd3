package domain

import "errors"

var (
	// ErrInvalidDate indicates a date string that is not a valid
	// YYYY-MM-DD calendar date, or a month/year outside sane bounds.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime indicates a wall-clock token that does not match
	// H:MM / HH:MM or carries an out-of-range hour or minute.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrMissingUser indicates an operation invoked without a user id.
	ErrMissingUser = errors.New("missing user id")

	// ErrMonthNotFound indicates a template was applied to a month that
	// was never initialized.
	ErrMonthNotFound = errors.New("month not initialized")

	// ErrNoMatch indicates free text that matched none of the command
	// patterns. Chat input is allowed to be conversational, so callers
	// normally swallow this rather than surface it.
	ErrNoMatch = errors.New("no command matched")

	// ErrDuplicateWeekday indicates a template block that assigns the
	// same weekday twice.
	ErrDuplicateWeekday = errors.New("duplicate weekday in template")

	// ErrStorageUnavailable wraps backend failures so transports can map
	// them to a retryable condition instead of dropping the write.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
