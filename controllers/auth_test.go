package controllers

import (
	"regexp"
	"testing"
	"time"

	"github.com/sudharlo/sapzap/models"
	"golang.org/x/crypto/bcrypt"
)

func TestOTPCodeForDemoAdmin(t *testing.T) {
	t.Setenv("DEMO_MODE", "true")

	if code := otpCodeFor(demoAdminPhone); code != demoAdminOTP {
		t.Errorf("demo admin OTP = %q, want %q", code, demoAdminOTP)
	}

	pattern := regexp.MustCompile(`^\d{6}$`)
	if code := otpCodeFor("9876543210"); !pattern.MatchString(code) {
		t.Errorf("regular OTP = %q, want 6 digits", code)
	}
}

func TestOTPCodeForDemoAdminOutsideDemoMode(t *testing.T) {
	t.Setenv("DEMO_MODE", "false")

	// Without demo mode even the demo phone gets a random code; a fixed
	// 111111 would only ever show up by chance.
	pattern := regexp.MustCompile(`^\d{6}$`)
	if code := otpCodeFor(demoAdminPhone); !pattern.MatchString(code) {
		t.Errorf("OTP = %q, want 6 digits", code)
	}
}

func TestOTPAcceptedMasterOTP(t *testing.T) {
	t.Setenv("DEMO_MODE", "true")

	hash, err := bcrypt.GenerateFromPassword([]byte("654321"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{
		Phone:        "9876543210",
		OTP:          string(hash),
		OTPExpiresAt: time.Now().Add(10 * time.Minute),
	}

	if !otpAccepted(&user, masterOTP, time.Now()) {
		t.Error("master OTP should be accepted in demo mode")
	}

	t.Setenv("DEMO_MODE", "false")
	if otpAccepted(&user, masterOTP, time.Now()) {
		t.Error("master OTP must not be accepted outside demo mode")
	}
}

func TestOTPAcceptedStoredCode(t *testing.T) {
	t.Setenv("DEMO_MODE", "false")

	hash, err := bcrypt.GenerateFromPassword([]byte("424242"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	user := models.User{
		Phone:        "9876543210",
		OTP:          string(hash),
		OTPExpiresAt: now.Add(10 * time.Minute),
	}

	if !otpAccepted(&user, "424242", now) {
		t.Error("correct code should be accepted")
	}
	if otpAccepted(&user, "000000", now) {
		t.Error("wrong code must be rejected")
	}
	if otpAccepted(&user, "424242", now.Add(11*time.Minute)) {
		t.Error("expired code must be rejected")
	}

	cleared := models.User{Phone: "9876543210"}
	if otpAccepted(&cleared, "424242", now) {
		t.Error("user with no stored OTP must be rejected")
	}
}
