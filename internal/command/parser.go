// Package command interprets free-text chat lines against the shift
// grammar and yields structured mutation intents. It is independent of
// storage: transports dispatch the returned intent to the service layer.
package command

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/smena/internal/domain"
)

// Action names what a parsed intent wants done.
type Action string

const (
	// ActionSetDay assigns working times to a dated day.
	ActionSetDay Action = "set_day"
	// ActionDayOff marks a dated day as non-working.
	ActionDayOff Action = "day_off"
	// ActionRecordToday logs a work record for the current date.
	ActionRecordToday Action = "record_today"
	// ActionApplyTemplate bulk-assigns a weekly template.
	ActionApplyTemplate Action = "apply_template"
)

// DayOffLabel is the note attached to a day-off command that carries no
// note of its own.
const DayOffLabel = "Выходной"

// Intent is the structured result of parsing one chat message.
type Intent struct {
	Action    Action
	Date      string
	StartTime string
	EndTime   string
	Notes     string
	Template  domain.WeeklyTemplate
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var dayOffKeywords = map[string]bool{
	"выходной": true,
	"off":      true,
}

// weekdayIndex maps Russian and English weekday abbreviations to the
// 0=Sunday .. 6=Saturday index used by weekly templates.
var weekdayIndex = map[string]int{
	"вс": 0, "пн": 1, "вт": 2, "ср": 3, "чт": 4, "пт": 5, "сб": 6,
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// matcher tries one grammar form against a single line. The bool reports
// whether the line has this form at all; a non-nil error means the form
// matched but carried an invalid payload.
type matcher func(fields []string, now time.Time) (*Intent, bool, error)

// Ordered by precedence: dated forms are tried before the bare time form.
var lineMatchers = []matcher{
	matchDatedDayOff,
	matchDatedShift,
	matchBareTimes,
}

// Parse interprets one chat message. Multi-line input is only meaningful
// as a weekly template block. Text matching no form returns ErrNoMatch,
// which callers treat as conversational chatter rather than a failure.
func Parse(text string, now time.Time) (*Intent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrNoMatch
	}

	lines := splitLines(text)
	if isTemplateBlock(lines) {
		return parseTemplateBlock(lines)
	}
	if len(lines) != 1 {
		return nil, domain.ErrNoMatch
	}

	fields := strings.Fields(lines[0])
	for _, match := range lineMatchers {
		intent, ok, err := match(fields, now)
		if err != nil {
			return nil, err
		}
		if ok {
			return intent, nil
		}
	}
	return nil, domain.ErrNoMatch
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// matchDatedDayOff recognizes "<YYYY-MM-DD> <day-off keyword> [notes...]".
func matchDatedDayOff(fields []string, _ time.Time) (*Intent, bool, error) {
	if len(fields) < 2 || !datePattern.MatchString(fields[0]) {
		return nil, false, nil
	}
	if !dayOffKeywords[strings.ToLower(fields[1])] {
		return nil, false, nil
	}
	if _, err := domain.ParseDate(fields[0]); err != nil {
		return nil, false, err
	}
	notes := strings.Join(fields[2:], " ")
	if notes == "" {
		notes = DayOffLabel
	}
	return &Intent{Action: ActionDayOff, Date: fields[0], Notes: notes}, true, nil
}

// matchDatedShift recognizes "<YYYY-MM-DD> <start> <end> [notes...]".
func matchDatedShift(fields []string, _ time.Time) (*Intent, bool, error) {
	if len(fields) < 3 || !datePattern.MatchString(fields[0]) {
		return nil, false, nil
	}
	if !domain.IsClock(fields[1]) || !domain.IsClock(fields[2]) {
		return nil, false, nil
	}
	if _, err := domain.ParseDate(fields[0]); err != nil {
		return nil, false, err
	}
	if err := validateClockPair(fields[1], fields[2]); err != nil {
		return nil, false, err
	}
	return &Intent{
		Action:    ActionSetDay,
		Date:      fields[0],
		StartTime: fields[1],
		EndTime:   fields[2],
		Notes:     strings.Join(fields[3:], " "),
	}, true, nil
}

// matchBareTimes recognizes "<start> <end> [notes...]" and targets the
// injected current date.
func matchBareTimes(fields []string, now time.Time) (*Intent, bool, error) {
	if len(fields) < 2 || !domain.IsClock(fields[0]) || !domain.IsClock(fields[1]) {
		return nil, false, nil
	}
	if err := validateClockPair(fields[0], fields[1]); err != nil {
		return nil, false, err
	}
	return &Intent{
		Action:    ActionRecordToday,
		Date:      now.Format(domain.DateLayout),
		StartTime: fields[0],
		EndTime:   fields[1],
		Notes:     strings.Join(fields[2:], " "),
	}, true, nil
}

// isTemplateBlock reports whether every line opens with a weekday
// abbreviation.
func isTemplateBlock(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return false
		}
		if _, ok := weekdayIndex[strings.ToLower(fields[0])]; !ok {
			return false
		}
	}
	return true
}

// parseTemplateBlock builds a weekly template from lines of the form
// "<weekday> <start> <end>" or "<weekday> <day-off keyword>".
func parseTemplateBlock(lines []string) (*Intent, error) {
	template := make(domain.WeeklyTemplate, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		weekday := weekdayIndex[strings.ToLower(fields[0])]
		if _, exists := template[weekday]; exists {
			return nil, fmt.Errorf("%s: %w", fields[0], domain.ErrDuplicateWeekday)
		}

		switch {
		case len(fields) >= 2 && dayOffKeywords[strings.ToLower(fields[1])]:
			template[weekday] = domain.TemplateSlot{Notes: DayOffLabel}
		case len(fields) >= 3 && domain.IsClock(fields[1]) && domain.IsClock(fields[2]):
			if err := validateClockPair(fields[1], fields[2]); err != nil {
				return nil, err
			}
			template[weekday] = domain.TemplateSlot{
				Working:   true,
				StartTime: fields[1],
				EndTime:   fields[2],
				Notes:     strings.Join(fields[3:], " "),
			}
		default:
			return nil, domain.ErrNoMatch
		}
	}
	return &Intent{Action: ActionApplyTemplate, Template: template}, nil
}

func validateClockPair(start, end string) error {
	if _, err := domain.ParseClock(start); err != nil {
		return err
	}
	if _, err := domain.ParseClock(end); err != nil {
		return err
	}
	return nil
}
