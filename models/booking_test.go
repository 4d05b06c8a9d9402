package models

import (
	"testing"
)

func TestBookingCanTransition(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingPending, BookingApproved, true},
		{BookingPending, BookingRejected, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingInProgress, false},
		{BookingPending, BookingCompleted, false},
		{BookingApproved, BookingInProgress, true},
		{BookingApproved, BookingCancelled, true},
		{BookingApproved, BookingCompleted, false},
		{BookingApproved, BookingRejected, false},
		{BookingInProgress, BookingCompleted, true},
		{BookingInProgress, BookingCancelled, true},
		{BookingInProgress, BookingApproved, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCancelled, BookingApproved, false},
		{BookingRejected, BookingApproved, false},
	}

	for _, tc := range cases {
		b := Booking{BookingStatus: tc.from}
		if got := b.CanTransition(tc.to); got != tc.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBookingIsTerminal(t *testing.T) {
	terminal := []BookingStatus{BookingRejected, BookingCancelled, BookingCompleted}
	for _, s := range terminal {
		b := Booking{BookingStatus: s}
		if !b.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	ongoing := []BookingStatus{BookingPending, BookingApproved, BookingInProgress}
	for _, s := range ongoing {
		b := Booking{BookingStatus: s}
		if b.IsTerminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}

func TestBookingBeforeCreateDefaults(t *testing.T) {
	b := Booking{}
	if err := b.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if b.BookingStatus != BookingPending {
		t.Errorf("expected default status PENDING, got %s", b.BookingStatus)
	}
	if b.PaymentStatus != PaymentUnpaid {
		t.Errorf("expected default payment status UNPAID, got %s", b.PaymentStatus)
	}

	b2 := Booking{BookingStatus: BookingApproved, PaymentStatus: PaymentPaid}
	if err := b2.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if b2.BookingStatus != BookingApproved || b2.PaymentStatus != PaymentPaid {
		t.Errorf("BeforeCreate overwrote explicit statuses: %s/%s", b2.BookingStatus, b2.PaymentStatus)
	}
}

func TestOngoingStatusesAreExactlyNonTerminal(t *testing.T) {
	all := []BookingStatus{
		BookingPending, BookingApproved, BookingRejected,
		BookingInProgress, BookingCompleted, BookingCancelled,
	}

	ongoing := map[BookingStatus]bool{}
	for _, s := range OngoingBookingStatuses {
		ongoing[s] = true
	}

	// The disable/delete guard counts bookings in OngoingBookingStatuses,
	// so that set must stay in lockstep with IsTerminal.
	for _, s := range all {
		b := Booking{BookingStatus: s}
		if ongoing[s] == b.IsTerminal() {
			t.Errorf("status %s: ongoing=%v but terminal=%v", s, ongoing[s], b.IsTerminal())
		}
	}
	if len(OngoingBookingStatuses) != 3 {
		t.Errorf("expected 3 ongoing statuses, got %d", len(OngoingBookingStatuses))
	}
}
