package consumer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
	"gorm.io/gorm"
)

// CreateReview adds a review for a completed booking and folds the rating
// into both the provider-level and offering-level aggregates. The insert and
// both aggregate updates share one transaction so a failure cannot leave the
// averages stale.
func CreateReview(c *fiber.Ctx) error {
	userIDVal := c.Locals("userID")
	userID, ok := userIDVal.(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	type ReviewInput struct {
		BookingID uint    `json:"booking_id"`
		Rating    float64 `json:"rating"`
		Comment   string  `json:"comment"`
	}
	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	var booking models.Booking
	if err := db.DB.Where("id = ? AND customer_id = ?", input.BookingID, userID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.BookingStatus != models.BookingCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only completed bookings can be reviewed",
		})
	}

	review := models.Review{
		BookingID:  booking.ID,
		CustomerID: userID,
		ProviderID: booking.ProviderID,
		ServiceID:  booking.ServiceID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This booking has already been reviewed",
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var provider models.ServiceProvider
		if err := tx.First(&provider, booking.ProviderID).Error; err != nil {
			return err
		}
		provider.ApplyRating(review.Rating)
		if err := tx.Save(&provider).Error; err != nil {
			return err
		}

		var offering models.ProviderService
		if err := tx.Where("provider_id = ? AND service_id = ?",
			booking.ProviderID, booking.ServiceID).First(&offering).Error; err != nil {
			return err
		}
		offering.ApplyRating(review.Rating)
		return tx.Save(&offering).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetProviderReviews retrieves all reviews for a specific provider
func GetProviderReviews(c *fiber.Ctx) error {
	providerID := c.Params("id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		// Only select non-sensitive fields
		return db.Select("id, name, created_at")
	}).
		Preload("Service").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	var count int64
	db.DB.Model(&models.Review{}).Where("provider_id = ?", providerID).Count(&count)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}
