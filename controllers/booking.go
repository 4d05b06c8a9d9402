package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
	"github.com/sudharlo/sapzap/utils"
	"gorm.io/gorm"
)

// CreateBooking godoc
// @Summary Create a new booking
// @Description Book a provider's service; starts in PENDING
// @Tags bookings
// @Accept json
// @Produce json
// @Success 201 {object} models.Booking
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/bookings [post]
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	booking.CustomerID = userID
	booking.BookingStatus = models.BookingPending
	booking.PaymentStatus = models.PaymentUnpaid

	// The provider must actually offer this service, and the offering must
	// be enabled.
	var offering models.ProviderService
	if err := db.DB.Where("provider_id = ? AND service_id = ? AND is_enabled = ?",
		booking.ProviderID, booking.ServiceID, true).First(&offering).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider does not offer this service",
		})
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// Tell the provider about the new request.
	var provider models.ServiceProvider
	if err := db.DB.First(&provider, booking.ProviderID).Error; err == nil {
		db.DB.Create(&models.Notification{
			UserID:  provider.UserID,
			Type:    models.NotificationBookingUpdate,
			Title:   "New booking request",
			Message: fmt.Sprintf("You have a new booking request #%d", booking.ID),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBookings godoc
// @Summary List bookings for the caller
// @Description Customers see their own, providers see assigned, admins see all
// @Tags bookings
// @Produce json
// @Success 200 {array} models.Booking
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/bookings [get]
func GetBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}
	role, _ := c.Locals("role").(models.Role)

	query := db.DB.Preload("Service").Preload("Customer").Preload("Provider.User")

	switch role {
	case models.RoleAdmin:
		// no filter
	case models.RoleServiceProvider:
		var provider models.ServiceProvider
		if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider profile not found",
			})
		}
		query = query.Where("provider_id = ?", provider.ID)
	default:
		query = query.Where("customer_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("booking_status = ?", models.BookingStatus(status))
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

// GetBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/bookings/{id} [get]
func GetBooking(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(models.Role)

	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Customer").Preload("Provider.User").
		First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if role != models.RoleAdmin && booking.CustomerID != userID && booking.Provider.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	return c.JSON(booking)
}

// UpdateBookingStatus godoc
// @Summary Transition a booking's status
// @Description Only the assigned provider (or an admin) may transition
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/bookings/{id}/status [put]
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}
	role, _ := c.Locals("role").(models.Role)

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	switch input.Status {
	case models.BookingApproved, models.BookingRejected, models.BookingInProgress,
		models.BookingCompleted, models.BookingCancelled:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking status",
		})
	}

	var booking models.Booking
	if err := db.DB.Preload("Provider").First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	isAdmin := role == models.RoleAdmin
	if !isAdmin && booking.Provider.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to update this booking",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := booking.UpdateStatus(tx, input.Status, isAdmin); err != nil {
			return err
		}
		return tx.Create(&models.Notification{
			UserID:  booking.CustomerID,
			Type:    models.NotificationBookingUpdate,
			Title:   "Booking update",
			Message: fmt.Sprintf("Your booking #%d is now %s", booking.ID, booking.BookingStatus),
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to update booking status",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}
