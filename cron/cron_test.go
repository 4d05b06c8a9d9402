package cron

import (
	"testing"
	"time"
)

func TestClassifyExpiry(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		expiry time.Time
		want   expiryNotice
	}{
		{"expires this morning", time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC), noticeExpiredToday},
		{"expires tonight", time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC), noticeExpiredToday},
		{"expires in the last second of today", time.Date(2024, 6, 15, 23, 59, 59, 500_000_000, time.UTC), noticeExpiredToday},
		{"expires at next midnight", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), noticeNone},
		{"expires in exactly 7 days", time.Date(2024, 6, 22, 12, 0, 0, 0, time.UTC), noticeExpiringSoon},
		{"expires in the last second of day 7", time.Date(2024, 6, 22, 23, 59, 59, 500_000_000, time.UTC), noticeExpiringSoon},
		{"expires in 3 days", time.Date(2024, 6, 18, 12, 0, 0, 0, time.UTC), noticeNone},
		{"expires in 6 days", time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), noticeNone},
		{"expires in 8 days", time.Date(2024, 6, 23, 12, 0, 0, 0, time.UTC), noticeNone},
		{"expired yesterday", time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC), noticeNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyExpiry(now, tc.expiry); got != tc.want {
				t.Errorf("classifyExpiry(%v) = %v, want %v", tc.expiry, got, tc.want)
			}
		})
	}
}
