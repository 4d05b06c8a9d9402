package utils

import (
	"os"
	"testing"
)

func TestSMTPPort(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"465", 465},
		{"25", 25},
		{"", 587},
		{"not-a-port", 587},
		{"-1", 587},
		{"0", 587},
	}
	for _, tc := range cases {
		if got := smtpPort(tc.raw); got != tc.want {
			t.Errorf("smtpPort(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestSendEmailRequiresHost(t *testing.T) {
	if os.Getenv("SMTP_HOST") != "" {
		t.Skip("SMTP relay configured in this environment")
	}
	// Relay settings are resolved once per process; with no SMTP_HOST in
	// the test environment, sending must fail fast instead of dialing.
	if err := SendEmail("someone@example.com", "hello", "<p>hi</p>"); err == nil {
		t.Fatal("expected error without SMTP_HOST")
	}
}
