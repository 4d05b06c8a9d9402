package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
)

// ListProviders returns provider profiles, optionally only those with a
// pending KYC submission.
func ListProviders(c *fiber.Ctx) error {
	query := db.DB.Preload("User").Model(&models.ServiceProvider{})
	if c.Query("kyc") == "pending" {
		query = query.Where("kyc_submitted = ? AND kyc_verified = ?", true, false)
	}

	var providers []models.ServiceProvider
	if err := query.Order("created_at DESC").Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch providers",
		})
	}
	return c.JSON(providers)
}

// VerifyKYC approves or rejects a provider's KYC submission.
func VerifyKYC(c *fiber.Ctx) error {
	var provider models.ServiceProvider
	if err := db.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	if !provider.KYC.Submitted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provider has not submitted KYC",
		})
	}

	type VerifyInput struct {
		Verified bool `json:"verified"`
	}
	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	provider.KYC.Verified = input.Verified
	if err := db.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update KYC status",
		})
	}

	title := "KYC verified"
	message := "Your KYC documents have been verified. You can now list services."
	if !input.Verified {
		title = "KYC rejected"
		message = "Your KYC documents were rejected. Please resubmit."
	}
	db.DB.Create(&models.Notification{
		UserID:  provider.UserID,
		Type:    models.NotificationGeneral,
		Title:   title,
		Message: message,
	})

	return c.JSON(provider)
}

// UpdateSubscription sets a provider's subscription window.
func UpdateSubscription(c *fiber.Ctx) error {
	var provider models.ServiceProvider
	if err := db.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	type SubscriptionInput struct {
		Active     *bool      `json:"active"`
		StartDate  *time.Time `json:"start_date"`
		ExpiryDate *time.Time `json:"expiry_date"`
		Amount     *float64   `json:"amount"`
	}
	input := new(SubscriptionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Active != nil {
		provider.Subscription.Active = *input.Active
	}
	if input.StartDate != nil {
		provider.Subscription.StartDate = *input.StartDate
	}
	if input.ExpiryDate != nil {
		provider.Subscription.ExpiryDate = *input.ExpiryDate
	}
	if input.Amount != nil {
		provider.Subscription.Amount = *input.Amount
	}

	if err := db.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update subscription",
		})
	}

	return c.JSON(provider)
}
