package utils

import (
	"strconv"
	"time"
)

const (
	// DateLayout is the DD-MM-YYYY form used for event dates.
	DateLayout = "02-01-2006"
	// TimestampLayout is the DD-MM-YYYY HH:MM form used for registration times.
	TimestampLayout = "02-01-2006 15:04"

	// MinEventYear is a fixed floor, not relative to the current year.
	MinEventYear = 2025
)

// IsValidDate checks the DD-MM-YYYY shape and coarse ranges. Day is only
// checked against 1..31, regardless of month or leap year.
func IsValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}

	if s[2] != '-' || s[5] != '-' {
		return false
	}

	day, month, year := s[0:2], s[3:5], s[6:10]

	if !IsNumeric(day) || !IsNumeric(month) || !IsNumeric(year) {
		return false
	}

	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)

	if m < 1 || m > 12 {
		return false
	}
	if d < 1 || d > 31 {
		return false
	}

	return y >= MinEventYear
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
