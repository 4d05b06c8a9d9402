package models

import (
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationSubscriptionExpiry NotificationType = "SUBSCRIPTION_EXPIRY"
	NotificationBookingUpdate      NotificationType = "BOOKING_UPDATE"
	NotificationGeneral            NotificationType = "GENERAL"
)

// Notification is an append-only per-user message log; only is_read is ever
// mutated after creation.
type Notification struct {
	gorm.Model
	UserID  uint             `json:"user_id" gorm:"not null;index"`
	User    User             `json:"-" gorm:"foreignKey:UserID"`
	Type    NotificationType `json:"type" gorm:"not null"`
	Title   string           `json:"title" gorm:"not null"`
	Message string           `json:"message"`
	IsRead  bool             `json:"is_read" gorm:"default:false"`
}
