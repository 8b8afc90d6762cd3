package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
)

// FormatMonth renders the month view as a day-per-row table followed by
// the derived statistics.
func FormatMonth(resp *contract.MonthResponse) string {
	rows := make([][]string, 0, len(resp.Days))
	for _, day := range resp.Days {
		date, err := domain.ParseDate(day.Date)
		if err != nil {
			continue
		}

		status := StyleDim.Render("off")
		times := ""
		hours := ""
		if day.Working {
			status = StyleGreen.Render("work")
			times = fmt.Sprintf("%s-%s", day.StartTime, day.EndTime)
			hours = FormatHours(day.Hours)
		}
		actual := ""
		if day.Recorded {
			actual = StyleBlue.Render(fmt.Sprintf("%s-%s (%s)", day.ActualStart, day.ActualEnd, FormatHours(day.ActualHours)))
		}

		rows = append(rows, []string{
			day.Date,
			date.Weekday().String()[:3],
			status,
			times,
			hours,
			actual,
			day.Notes,
		})
	}

	var b strings.Builder
	b.WriteString(Header("Schedule " + resp.MonthKey))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"DATE", "DAY", "STATUS", "PLANNED", "HOURS", "RECORDED", "NOTES"},
		rows,
	))
	b.WriteString("\n")
	b.WriteString(FormatMonthStats(resp.Stats))
	return b.String()
}

// FormatMonthStats renders the one-line month summary.
func FormatMonthStats(stats domain.MonthStats) string {
	return fmt.Sprintf("%s %d working days, %s total, %s avg/day",
		StyleBold.Render("Total:"),
		stats.WorkingDays,
		FormatHours(stats.TotalHours),
		FormatHours(stats.AverageHours),
	)
}

// FormatDay renders a single saved day entry confirmation.
func FormatDay(day *domain.DayEntry) string {
	if !day.Working {
		note := day.Notes
		if note == "" {
			note = "day off"
		}
		return fmt.Sprintf("%s %s  %s", StyleBold.Render(day.Date), StyleDim.Render("off"), note)
	}
	return fmt.Sprintf("%s %s  %s-%s  %s  %s",
		StyleBold.Render(day.Date),
		StyleGreen.Render("work"),
		day.StartTime, day.EndTime,
		FormatHours(day.Hours),
		day.Notes,
	)
}

// MonthCalendar renders a compact calendar grid for the dashboard: one
// cell per day, colored by working status, with the day-of-month number
// and derived hours.
func MonthCalendar(monthKey string, days []contract.DayView) string {
	year, month, err := domain.ParseMonthKey(monthKey)
	if err != nil || len(days) == 0 {
		return ""
	}

	byDate := make(map[string]contract.DayView, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	var b strings.Builder
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%-8s", wd)))
	}
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	b.WriteString(strings.Repeat(" ", int(first.Weekday())*8))

	for dayNum := 1; dayNum <= domain.DaysIn(year, month); dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		cell := fmt.Sprintf("%2d", dayNum)
		if view, ok := byDate[date.Format(domain.DateLayout)]; ok && view.Working {
			cell += fmt.Sprintf(" %.1f", view.Hours)
		}
		b.WriteString(DayStyle(byDate[date.Format(domain.DateLayout)].Working).Render(fmt.Sprintf("%-8s", cell)))
		if date.Weekday() == time.Saturday {
			b.WriteString("\n")
		}
	}
	if last := time.Date(year, month, domain.DaysIn(year, month), 0, 0, 0, 0, time.UTC); last.Weekday() != time.Saturday {
		b.WriteString("\n")
	}
	return b.String()
}
