package contract

import "github.com/alexanderramin/smena/internal/domain"

// MonthRequest asks for one user's month view.
type MonthRequest struct {
	UserID   int64  `json:"userId"`
	MonthKey string `json:"month"`
}

// SetDayRequest mutates a single day entry. Times are ignored and cleared
// when Working is false.
type SetDayRequest struct {
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	Working   bool   `json:"working"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

// ApplyTemplateRequest bulk-assigns a weekly template across a month.
type ApplyTemplateRequest struct {
	UserID   int64                 `json:"userId"`
	MonthKey string                `json:"month"`
	Template domain.WeeklyTemplate `json:"template"`
}

// RecordHoursRequest logs one work session into the flat record log.
type RecordHoursRequest struct {
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

// StatsRequest asks for record statistics over a relative period.
type StatsRequest struct {
	UserID int64         `json:"userId"`
	Period domain.Period `json:"period"`
}

// CommandRequest carries one raw chat line for the free-text parser.
type CommandRequest struct {
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
}
