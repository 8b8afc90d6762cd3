package contract

import "github.com/alexanderramin/smena/internal/domain"

// Result is the wire envelope every API response is wrapped in.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope.
func Fail(msg string) Result {
	return Result{Success: false, Error: msg}
}

// DayView is a schedule day overlaid with the matching work record, when
// one was logged for the same date.
type DayView struct {
	domain.DayEntry
	ActualStart string  `json:"actualStart,omitempty"`
	ActualEnd   string  `json:"actualEnd,omitempty"`
	ActualHours float64 `json:"actualHours,omitempty"`
	Recorded    bool    `json:"recorded"`
}

// MonthResponse is the dense month plus its derived statistics, in
// calendar order.
type MonthResponse struct {
	MonthKey string            `json:"month"`
	Days     []DayView         `json:"days"`
	Stats    domain.MonthStats `json:"stats"`
}

// StatsResponse is the filtered record list plus its summary.
type StatsResponse struct {
	Period  domain.Period        `json:"period"`
	Summary domain.RecordSummary `json:"summary"`
	Records []*domain.WorkRecord `json:"records"`
}

// CommandOutcome reports what a parsed chat command ended up doing.
type CommandOutcome struct {
	Action string             `json:"action"`
	Day    *domain.DayEntry   `json:"day,omitempty"`
	Record *domain.WorkRecord `json:"record,omitempty"`
	Days   []domain.DayEntry  `json:"days,omitempty"`
}
