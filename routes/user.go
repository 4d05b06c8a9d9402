package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers"
	"github.com/sudharlo/sapzap/middleware"
)

// SetupUserRoutes configures the current-user profile routes
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/api/users", middleware.Protected())
	users.Get("/me", controllers.GetMe)
	users.Put("/me", controllers.UpdateMe)
	users.Put("/me/picture", controllers.UpdateProfilePicture)
}
