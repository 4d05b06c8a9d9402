package utils

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	base := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	start, end := DayWindow(base, 0)
	if !start.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	start, end = DayWindow(base, 7)
	if !start.Equal(time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start+7 = %v", start)
	}
	if !end.Equal(time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end+7 = %v", end)
	}
}

func TestDayWindowCoversWholeDay(t *testing.T) {
	base := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	start, end := DayWindow(base, 0)

	// A timestamp in the last second of the day still falls inside the
	// half-open window.
	lastTick := time.Date(2024, 6, 15, 23, 59, 59, 500_000_000, time.UTC)
	if lastTick.Before(start) || !lastTick.Before(end) {
		t.Errorf("23:59:59.5 not inside [%v, %v)", start, end)
	}

	nextMidnight := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	if nextMidnight.Before(end) {
		t.Errorf("next midnight %v inside window ending %v", nextMidnight, end)
	}
}

func TestDayWindowCrossesMonth(t *testing.T) {
	base := time.Date(2024, 1, 28, 9, 0, 0, 0, time.UTC)
	start, _ := DayWindow(base, 7)
	if !start.Equal(time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want Feb 4", start)
	}
}
