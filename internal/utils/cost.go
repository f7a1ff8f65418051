package utils

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for all rental dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd string into a time.Time at midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// RentalDays returns the billable day count for a rental period.
// The count is the calendar-day difference end-start, with a one day
// minimum so a same-day rental is billed as one day.
func RentalDays(start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	days := int64(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalCost computes the total amount in cents for a period at the
// given daily rate.
func RentalCost(dailyRateCents int64, start, end time.Time) (int64, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return dailyRateCents * days, nil
}

// InterestCents computes creditCents * ratePct / 100 rounded half-up to
// the nearest cent.
func InterestCents(creditCents int64, ratePct float64) int64 {
	return int64(math.Floor(float64(creditCents)*ratePct/100 + 0.5))
}
