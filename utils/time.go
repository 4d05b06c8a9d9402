package utils

import "time"

// ToIST converts UTC time to Indian Standard Time (IST)
func ToIST(t time.Time) time.Time {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return t // Fallback to UTC if IST is not available
	}
	return t.In(ist)
}

// DayWindow returns the half-open window [start, end) for the calendar day
// offsetDays after t, in t's location: start of that day and start of the
// following day. Callers compare with Before so no sub-second timestamp can
// fall through.
func DayWindow(t time.Time, offsetDays int) (time.Time, time.Time) {
	day := t.AddDate(0, 0, offsetDays)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
