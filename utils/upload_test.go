package utils

import (
	"mime/multipart"
	"testing"
	"time"
)

func TestValidateKYCFile(t *testing.T) {
	cases := []struct {
		name    string
		file    multipart.FileHeader
		wantErr bool
	}{
		{"jpeg ok", multipart.FileHeader{Filename: "aadhar.jpeg", Size: 1024}, false},
		{"jpg ok", multipart.FileHeader{Filename: "aadhar.jpg", Size: 1024}, false},
		{"png ok", multipart.FileHeader{Filename: "pan.png", Size: 1024}, false},
		{"pdf ok", multipart.FileHeader{Filename: "pan.PDF", Size: 1024}, false},
		{"exe rejected", multipart.FileHeader{Filename: "evil.exe", Size: 1024}, true},
		{"no extension", multipart.FileHeader{Filename: "aadhar", Size: 1024}, true},
		{"at size cap", multipart.FileHeader{Filename: "pan.png", Size: MaxKYCFileSize}, false},
		{"over size cap", multipart.FileHeader{Filename: "pan.png", Size: MaxKYCFileSize + 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateKYCFile(&tc.file)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %s", tc.file.Filename)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for %s: %v", tc.file.Filename, err)
			}
		})
	}
}

func TestKYCFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	got := KYCFileName(42, "aadhar_file", "scan.PNG", now)
	want := "42-aadhar_file-1700000000.png"
	if got != want {
		t.Errorf("KYCFileName = %q, want %q", got, want)
	}
}
