package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
)

// GetDashboardStats aggregates platform-wide counters for the admin panel.
func GetDashboardStats(c *fiber.Ctx) error {
	var statistics struct {
		TotalUsers      int64     `json:"total_users"`
		TotalCustomers  int64     `json:"total_customers"`
		TotalProviders  int64     `json:"total_providers"`
		PendingKYC      int64     `json:"pending_kyc"`
		TotalBookings   int64     `json:"total_bookings"`
		PendingCount    int64     `json:"pending_count"`
		ApprovedCount   int64     `json:"approved_count"`
		InProgressCount int64     `json:"in_progress_count"`
		CompletedCount  int64     `json:"completed_count"`
		CancelledCount  int64     `json:"cancelled_count"`
		RejectedCount   int64     `json:"rejected_count"`
		TotalRevenue    float64   `json:"total_revenue"`
		LastUpdated     time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.User{}).Count(&statistics.TotalUsers)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&statistics.TotalCustomers)
	db.DB.Model(&models.ServiceProvider{}).Count(&statistics.TotalProviders)
	db.DB.Model(&models.ServiceProvider{}).
		Where("kyc_submitted = ? AND kyc_verified = ?", true, false).
		Count(&statistics.PendingKYC)

	db.DB.Model(&models.Booking{}).Count(&statistics.TotalBookings)
	statusCounts := map[models.BookingStatus]*int64{
		models.BookingPending:    &statistics.PendingCount,
		models.BookingApproved:   &statistics.ApprovedCount,
		models.BookingInProgress: &statistics.InProgressCount,
		models.BookingCompleted:  &statistics.CompletedCount,
		models.BookingCancelled:  &statistics.CancelledCount,
		models.BookingRejected:   &statistics.RejectedCount,
	}
	for status, dest := range statusCounts {
		db.DB.Model(&models.Booking{}).Where("booking_status = ?", status).Count(dest)
	}

	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Model(&models.Booking{}).
		Where("booking_status = ? AND payment_status = ?", models.BookingCompleted, models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
