package utils

import (
	"regexp"
	"testing"
)

func TestGenerateOTPFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		if !pattern.MatchString(code) {
			t.Fatalf("GenerateOTP() = %q, want 6 digits", code)
		}
	}
}

func TestGenerateOTPVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateOTP()] = true
	}
	// 50 identical draws from a million-value space would mean a broken
	// generator.
	if len(seen) < 2 {
		t.Errorf("expected varying OTPs, got %d distinct values", len(seen))
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9876543210", "9876543210", false},
		{"+91 98765-43210", "9876543210", false},
		{"919876543210", "9876543210", false},
		{"(987) 654-3210", "9876543210", false},
		{"12345", "", true},
		{"", "", true},
		{"abcdefghij", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizePhone(%q) expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizePhone(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
