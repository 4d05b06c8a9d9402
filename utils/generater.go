package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
)

// GenerateOTP returns a random 6-digit numeric code.
func GenerateOTP() string {
	var buf [4]byte
	rand.Read(buf[:])
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(buf[:])%1000000)
}

// NormalizePhone strips everything but digits and keeps the last 10, so
// "+91 98765-43210" and "9876543210" address the same user.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 10 {
		return "", fmt.Errorf("phone number must have at least 10 digits")
	}
	return digits[len(digits)-10:], nil
}
