package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers"
	"github.com/sudharlo/sapzap/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/send-otp", controllers.SendOTP)
	auth.Post("/verify-otp", controllers.VerifyOTP)

	// Protected routes
	auth.Post("/select-role", middleware.Protected(), controllers.SelectRole)
}
