package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers"
	"github.com/sudharlo/sapzap/middleware"
)

// SetupNotificationRoutes configures the notification feed routes
func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/api/notifications", middleware.Protected())
	notifications.Get("/", controllers.GetNotifications)
	notifications.Patch("/:id/read", controllers.MarkNotificationRead)
}
