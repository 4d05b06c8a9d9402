package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingApproved   BookingStatus = "APPROVED"
	BookingRejected   BookingStatus = "REJECTED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// OngoingBookingStatuses are the non-terminal states. A provider offering
// with a booking in one of these cannot be disabled or deleted.
var OngoingBookingStatuses = []BookingStatus{BookingPending, BookingApproved, BookingInProgress}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Booking struct {
	gorm.Model
	CustomerID    uint            `json:"customer_id"`
	Customer      User            `json:"customer" gorm:"foreignKey:CustomerID"`
	ProviderID    uint            `json:"provider_id"`
	Provider      ServiceProvider `json:"provider" gorm:"foreignKey:ProviderID"`
	ServiceID     uint            `json:"service_id"`
	Service       Service         `json:"service" gorm:"foreignKey:ServiceID"`
	BookingStatus BookingStatus   `json:"booking_status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Amount        float64         `json:"amount"`
	Address       string          `json:"address"`
	Notes         string          `json:"notes"`
	ScheduledAt   *time.Time      `json:"scheduled_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingStatus == "" {
		b.BookingStatus = BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentUnpaid
	}
	return nil
}

// IsTerminal reports whether the booking can no longer change state.
func (b *Booking) IsTerminal() bool {
	switch b.BookingStatus {
	case BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransition reports whether newStatus is reachable from the current
// status: PENDING -> APPROVED/REJECTED/CANCELLED, APPROVED ->
// IN_PROGRESS/CANCELLED, IN_PROGRESS -> COMPLETED/CANCELLED.
func (b *Booking) CanTransition(newStatus BookingStatus) bool {
	switch b.BookingStatus {
	case BookingPending:
		return newStatus == BookingApproved || newStatus == BookingRejected || newStatus == BookingCancelled
	case BookingApproved:
		return newStatus == BookingInProgress || newStatus == BookingCancelled
	case BookingInProgress:
		return newStatus == BookingCompleted || newStatus == BookingCancelled
	}
	return false
}

// UpdateStatus validates and persists a status transition. force bypasses
// the transition table (admin override) but never revives a terminal booking.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus, force bool) error {
	if force {
		if b.IsTerminal() {
			return fmt.Errorf("no transitions allowed from %s", b.BookingStatus)
		}
	} else if !b.CanTransition(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.BookingStatus, newStatus)
	}

	b.BookingStatus = newStatus
	return tx.Save(b).Error
}
