package models

import (
	"gorm.io/gorm"
)

// Review is one per completed booking, enforced by an existence check at
// creation time rather than a unique index.
type Review struct {
	gorm.Model
	BookingID  uint            `json:"booking_id" gorm:"index"`
	Booking    Booking         `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	CustomerID uint            `json:"customer_id"`
	Customer   User            `json:"customer" gorm:"foreignKey:CustomerID"`
	ProviderID uint            `json:"provider_id" gorm:"index"`
	Provider   ServiceProvider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID  uint            `json:"service_id"`
	Service    Service         `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Rating     float64         `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string          `json:"comment"`
}

// BeforeCreate clamps the rating into the 1.0..5.0 band.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}

// HasExistingReview checks whether the booking has already been reviewed.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("booking_id = ? AND deleted_at IS NULL", r.BookingID).
		Count(&count).Error
	return count > 0, err
}
