package models

import (
	"gorm.io/gorm"
)

// ProviderService is a provider's offering of a catalog service. It carries
// its own price range and rating aggregate, distinct from the provider-level
// aggregate.
type ProviderService struct {
	gorm.Model
	ProviderID    uint            `json:"provider_id" gorm:"index:idx_provider_service,unique"`
	Provider      ServiceProvider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID     uint            `json:"service_id" gorm:"index:idx_provider_service,unique"`
	Service       Service         `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Description   string          `json:"description"`
	MinPrice      float64         `json:"min_price"`
	MaxPrice      float64         `json:"max_price"`
	IsEnabled     bool            `json:"is_enabled" gorm:"default:true"`
	AverageRating float64         `json:"average_rating"`
	TotalReviews  int64           `json:"total_reviews"`
}

// ApplyRating folds a new review rating into the offering's running average.
func (ps *ProviderService) ApplyRating(rating float64) {
	ps.AverageRating = (ps.AverageRating*float64(ps.TotalReviews) + rating) / float64(ps.TotalReviews+1)
	ps.TotalReviews++
}

// HasOngoingBookings reports whether any booking for this (provider, service)
// pair is still in a non-terminal status. Offerings cannot be disabled or
// deleted while this holds.
func (ps *ProviderService) HasOngoingBookings(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Booking{}).
		Where("provider_id = ? AND service_id = ? AND booking_status IN ?",
			ps.ProviderID, ps.ServiceID, OngoingBookingStatuses).
		Count(&count).Error
	return count > 0, err
}
