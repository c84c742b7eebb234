// utils/dates.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClockTime parses a 24-hour "HH:MM" string and range-checks both parts.
func ParseClockTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time must be in HH:MM format (24-hour)")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("time must be in HH:MM format (24-hour)")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("time must be in HH:MM format (24-hour)")
	}
	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute must be between 0 and 59")
	}
	return hour, minute, nil
}

// NormalizeClockTime renders hour and minute in the canonical zero-padded
// "HH:MM" form stored on schedules.
func NormalizeClockTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// NextOccurrence returns the next wall-clock time hour:minute comes around
// strictly after now.
func NextOccurrence(hour, minute int, now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
