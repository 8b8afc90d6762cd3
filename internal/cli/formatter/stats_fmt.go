package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
)

// FormatStats renders the filtered record list and its summary.
func FormatStats(resp *contract.StatsResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Hours (%s)", resp.Period)))
	b.WriteString("\n")

	if len(resp.Records) == 0 {
		b.WriteString(StyleDim.Render("No records for this period."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Records))
	for _, rec := range resp.Records {
		rows = append(rows, []string{
			rec.Date,
			fmt.Sprintf("%s-%s", rec.StartTime, rec.EndTime),
			fmt.Sprintf("%dh %dm", rec.Hours, rec.Minutes),
			rec.Notes,
		})
	}
	b.WriteString(RenderTable([]string{"DATE", "TIME", "WORKED", "NOTES"}, rows))
	b.WriteString("\n")
	b.WriteString(FormatSummary(resp.Summary))
	return b.String()
}

// FormatSummary renders the one-line record summary.
func FormatSummary(summary domain.RecordSummary) string {
	return fmt.Sprintf("%s %d records, %dh total, %.1fh avg/day",
		StyleBold.Render("Total:"),
		summary.TotalRecords,
		summary.TotalHours,
		summary.DailyAverage,
	)
}

// FormatRecord renders a single saved record confirmation.
func FormatRecord(rec *domain.WorkRecord) string {
	return fmt.Sprintf("%s %s  %s-%s  %dh %dm  %s",
		StyleGreen.Render("Recorded:"),
		rec.Date,
		rec.StartTime, rec.EndTime,
		rec.Hours, rec.Minutes,
		rec.Notes,
	)
}
