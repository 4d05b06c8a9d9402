package models

import (
	"time"
)

type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleCustomer        Role = "CUSTOMER"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleServiceProvider || r == RoleCustomer
}

// Selectable reports whether a user may pick the role for themselves during
// onboarding. ADMIN is assigned out of band, never self-selected.
func (r Role) Selectable() bool {
	return r == RoleServiceProvider || r == RoleCustomer
}

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Role             Role      `json:"role"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone" gorm:"unique;not null"`
	Email            string    `json:"email" gorm:"index"`
	ProfilePicture   string    `json:"profile_picture"`
	IsVerified       bool      `json:"is_verified"`
	ProfileCompleted bool      `json:"profile_completed"`
	OTP              string    `json:"-"` // bcrypt hash of the last issued code
	OTPExpiresAt     time.Time `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
