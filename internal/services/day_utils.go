package services

import (
	"strings"
	"time"
)

const dayFormat = "2006-01-02"

const hoursPerDay = 24

// DateOnly strips the time-of-day component and pins the calendar day to
// UTC midnight. All cycle arithmetic runs on these normalized values so a
// whole-day subtraction can never straddle a DST shift.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from the older date to the newer one.
// Negative when to precedes from.
func DaysBetween(from time.Time, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / hoursPerDay)
}

func AddDays(value time.Time, days int) time.Time {
	return DateOnly(value).AddDate(0, 0, days)
}

func ParseDay(value string) (time.Time, error) {
	parsed, err := time.Parse(dayFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(parsed), nil
}

func FormatDay(value time.Time) string {
	return value.Format(dayFormat)
}
