package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock converts an H:MM or HH:MM wall-clock token to minutes since
// midnight. Hours above 23 or minutes above 59 are rejected.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidTime)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidTime)
	}
	return hour*60 + minute, nil
}

// IsClock reports whether s looks like a wall-clock token, valid or not.
// Matchers use it to distinguish "bad time" from "not a time command".
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ShiftMinutes returns the elapsed minutes between two wall-clock times.
// An end before the start is treated as crossing midnight. Equal times
// yield 0, not a full day. Empty inputs yield exactly 0.
func ShiftMinutes(start, end string) (int, error) {
	if start == "" || end == "" {
		return 0, nil
	}
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	diff := e - s
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, nil
}

// WorkedHours returns the elapsed hours between two wall-clock times,
// rounded to one decimal place.
func WorkedHours(start, end string) (float64, error) {
	minutes, err := ShiftMinutes(start, end)
	if err != nil {
		return 0, err
	}
	return Round1(float64(minutes) / 60), nil
}

// SplitHoursMinutes breaks the elapsed shift time into whole hours plus a
// minute remainder, along with the total minute count.
func SplitHoursMinutes(start, end string) (hours, minutes, total int, err error) {
	total, err = ShiftMinutes(start, end)
	if err != nil {
		return 0, 0, 0, err
	}
	return total / 60, total % 60, total, nil
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
