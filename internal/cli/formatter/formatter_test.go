package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "HOURS"},
		[][]string{
			{"2024-05-22", "9.5h"},
			{"2024-05-23", "8h"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DATE")
	assert.Contains(t, lines[2], "2024-05-22")
	assert.Contains(t, lines[3], "2024-05-23")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "9.5h", FormatHours(9.5))
	assert.Equal(t, "0.0h", FormatHours(0))
}

func TestMonthCalendar(t *testing.T) {
	working, err := domain.NewDayEntry("2024-05-06", true, "09:00", "18:00", "")
	require.NoError(t, err)

	days := []contract.DayView{
		{DayEntry: domain.DayEntry{Date: "2024-05-01"}},
		{DayEntry: working},
	}
	out := MonthCalendar("2024-05", days)

	assert.Contains(t, out, "Su")
	assert.Contains(t, out, "Sa")
	assert.Contains(t, out, " 6 9.0")
	assert.Contains(t, out, "31")
}

func TestMonthCalendar_BadKeyIsEmpty(t *testing.T) {
	assert.Empty(t, MonthCalendar("not-a-month", nil))
}

func TestFormatDay(t *testing.T) {
	day, err := domain.NewDayEntry("2024-05-22", true, "09:00", "18:30", "склад")
	require.NoError(t, err)
	out := FormatDay(&day)
	assert.Contains(t, out, "09:00-18:30")
	assert.Contains(t, out, "9.5h")
	assert.Contains(t, out, "склад")

	off, err := domain.NewDayEntry("2024-05-23", false, "", "", "")
	require.NoError(t, err)
	assert.Contains(t, FormatDay(&off), "day off")
}
