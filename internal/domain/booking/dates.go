package booking

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for stay dates.
const DateLayout = "2006-01-02"

// Midnight truncates a timestamp to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateStayDates applies the stay-window rules relative to "now":
// check-in must not be in the past, check-out must be at least tomorrow, and
// check-in must precede check-out. Each violation yields a date_invalid issue.
func ValidateStayDates(now, checkIn, checkOut time.Time) Issues {
	var issues Issues

	today := Midnight(now)
	tomorrow := today.AddDate(0, 0, 1)

	if checkIn.Before(today) {
		issues = append(issues, Issue{
			Kind:   IssueDateInvalid,
			Detail: fmt.Sprintf("check-in date cannot be in the past, today is %s", today.Format(DateLayout)),
		})
	}
	if checkOut.Before(tomorrow) {
		issues = append(issues, Issue{
			Kind:   IssueDateInvalid,
			Detail: fmt.Sprintf("check-out date must be at least tomorrow, today is %s", today.Format(DateLayout)),
		})
	}
	if !checkIn.Before(checkOut) {
		issues = append(issues, Issue{
			Kind:   IssueDateInvalid,
			Detail: "check-in date must be before check-out date",
		})
	}

	return issues
}
