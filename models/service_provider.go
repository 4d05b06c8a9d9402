package models

import (
	"time"

	"gorm.io/gorm"
)

// KYCDetails is embedded on the provider row. Files are stored on local disk
// under uploads/kyc/ and only the paths are kept here.
type KYCDetails struct {
	AadharNumber string `json:"aadhar_number"`
	PanNumber    string `json:"pan_number"`
	AadharFile   string `json:"aadhar_file"`
	PanFile      string `json:"pan_file"`
	Submitted    bool   `json:"submitted"`
	Verified     bool   `json:"verified"`
}

// Subscription is the provider's paid listing window. Expiry is scanned by
// the daily cron; it is never deactivated automatically.
type Subscription struct {
	Active     bool      `json:"active"`
	StartDate  time.Time `json:"start_date"`
	ExpiryDate time.Time `json:"expiry_date"`
	Amount     float64   `json:"amount"`
}

type ServiceProvider struct {
	gorm.Model
	UserID        uint         `json:"user_id" gorm:"uniqueIndex"`
	User          User         `json:"user" gorm:"foreignKey:UserID"`
	BusinessName  string       `json:"business_name"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	State         string       `json:"state"`
	ZipCode       string       `json:"zip_code"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	Subscription  Subscription `json:"subscription" gorm:"embedded;embeddedPrefix:subscription_"`
	KYC           KYCDetails   `json:"kyc" gorm:"embedded;embeddedPrefix:kyc_"`
	AverageRating float64      `json:"average_rating"`
	TotalReviews  int64        `json:"total_reviews"`
}

// ApplyRating folds a new review rating into the running average. Must be
// persisted in the same transaction as the review insert.
func (sp *ServiceProvider) ApplyRating(rating float64) {
	sp.AverageRating = (sp.AverageRating*float64(sp.TotalReviews) + rating) / float64(sp.TotalReviews+1)
	sp.TotalReviews++
}
