package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers"
	"github.com/sudharlo/sapzap/middleware"
	"github.com/sudharlo/sapzap/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/api/bookings", middleware.Protected())
	booking.Post("/", middleware.RequireRole(models.RoleCustomer), controllers.CreateBooking)
	booking.Get("/", controllers.GetBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Put("/:id/status", middleware.RequireRole(models.RoleServiceProvider, models.RoleAdmin), controllers.UpdateBookingStatus)
}
