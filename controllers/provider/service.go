package provider

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
	"gorm.io/gorm"
)

// currentProvider resolves the caller's ServiceProvider row.
func currentProvider(c *fiber.Ctx) (*models.ServiceProvider, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, errors.New("user ID not found in context")
	}
	var provider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, errors.New("provider profile not found")
	}
	return &provider, nil
}

var (
	errKYCNotVerified   = errors.New("Provider KYC is not verified")
	errServiceInactive  = errors.New("Service is not active")
	errCategoryInactive = errors.New("Service category is not active")
	errOngoingBookings  = errors.New("ongoing bookings exist")
)

// validateOffering runs the precondition chain for listing a service under a
// provider. Each failed precondition returns its own error so callers can
// surface a distinct message: unverified KYC, inactive service, inactive (or
// missing) parent category.
func validateOffering(provider *models.ServiceProvider, service *models.Service, category *models.ServiceCategory) error {
	if !provider.KYC.Verified {
		return errKYCNotVerified
	}
	if !service.Active {
		return errServiceInactive
	}
	if category == nil || !category.Active {
		return errCategoryInactive
	}
	return nil
}

// offeringMutationAllowed is the guard shared by disable and delete: a
// mutation that takes the offering out of service is blocked while ongoing
// bookings exist. Enabling is always allowed.
func offeringMutationAllowed(disabling, hasOngoing bool) error {
	if disabling && hasOngoing {
		return errOngoingBookings
	}
	return nil
}

// CreateProviderService lists a catalog service under the calling provider.
func CreateProviderService(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var offering models.ProviderService
	if err := c.BodyParser(&offering); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	offering.ProviderID = provider.ID
	offering.IsEnabled = true

	var service models.Service
	if err := db.DB.First(&service, offering.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	category := new(models.ServiceCategory)
	if err := db.DB.First(category, service.CategoryID).Error; err != nil {
		category = nil
	}

	if err := validateOffering(provider, &service, category); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, errKYCNotVerified) {
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var existing models.ProviderService
	if db.DB.Where("provider_id = ? AND service_id = ?", provider.ID, offering.ServiceID).
		First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You already offer this service",
		})
	}

	if err := db.DB.Create(&offering).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create provider service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(offering)
}

// GetProviderServices lists the calling provider's offerings.
func GetProviderServices(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var offerings []models.ProviderService
	if err := db.DB.Preload("Service.Category").
		Where("provider_id = ?", provider.ID).
		Find(&offerings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch provider services",
		})
	}

	return c.JSON(offerings)
}

// UpdateProviderService changes price range and description of an offering.
func UpdateProviderService(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var offering models.ProviderService
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), provider.ID).
		First(&offering).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider service not found",
		})
	}

	type UpdateInput struct {
		Description *string  `json:"description"`
		MinPrice    *float64 `json:"min_price"`
		MaxPrice    *float64 `json:"max_price"`
	}
	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updates := map[string]interface{}{}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.MinPrice != nil {
		updates["min_price"] = *input.MinPrice
	}
	if input.MaxPrice != nil {
		updates["max_price"] = *input.MaxPrice
	}

	if len(updates) == 0 {
		return c.JSON(offering)
	}
	if err := db.DB.Model(&offering).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update provider service",
		})
	}

	return c.JSON(offering)
}

// UpdateProviderServiceStatus enables or disables an offering. Disabling is
// blocked while any booking for the pair is non-terminal; the check and the
// write share one transaction so a booking created in between cannot slip
// past the guard.
func UpdateProviderServiceStatus(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	type StatusInput struct {
		IsEnabled bool `json:"is_enabled"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var offering models.ProviderService
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), provider.ID).
		First(&offering).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider service not found",
		})
	}

	txErr := db.DB.Transaction(func(tx *gorm.DB) error {
		if !input.IsEnabled {
			ongoing, err := offering.HasOngoingBookings(tx)
			if err != nil {
				return err
			}
			if err := offeringMutationAllowed(true, ongoing); err != nil {
				return err
			}
		}
		return tx.Model(&offering).Update("is_enabled", input.IsEnabled).Error
	})
	if errors.Is(txErr, errOngoingBookings) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot disable a service with ongoing bookings",
		})
	}
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service status",
		})
	}

	return c.JSON(offering)
}

// DeleteProviderService removes an offering, guarded like disabling.
func DeleteProviderService(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var offering models.ProviderService
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), provider.ID).
		First(&offering).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider service not found",
		})
	}

	txErr := db.DB.Transaction(func(tx *gorm.DB) error {
		ongoing, err := offering.HasOngoingBookings(tx)
		if err != nil {
			return err
		}
		if err := offeringMutationAllowed(true, ongoing); err != nil {
			return err
		}
		return tx.Delete(&offering).Error
	})
	if errors.Is(txErr, errOngoingBookings) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot delete a service with ongoing bookings",
		})
	}
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete provider service",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
