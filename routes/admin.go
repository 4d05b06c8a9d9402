package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers/admin"
	"github.com/sudharlo/sapzap/middleware"
	"github.com/sudharlo/sapzap/models"
)

// SetupAdminRoutes configures the admin surface
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin",
		middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", admin.ListUsers)
	adminGroup.Get("/users/:id", admin.GetUser)

	adminGroup.Get("/categories", admin.ListCategories)
	adminGroup.Post("/categories", admin.CreateCategory)
	adminGroup.Put("/categories/:id", admin.UpdateCategory)

	adminGroup.Get("/services", admin.ListServices)
	adminGroup.Post("/services", admin.CreateService)
	adminGroup.Put("/services/:id", admin.UpdateService)

	adminGroup.Get("/providers", admin.ListProviders)
	adminGroup.Put("/providers/:id/kyc", admin.VerifyKYC)
	adminGroup.Put("/providers/:id/subscription", admin.UpdateSubscription)

	adminGroup.Get("/dashboard", admin.GetDashboardStats)

	adminGroup.Get("/settings", admin.GetSettings)
	adminGroup.Put("/settings", admin.UpsertSetting)
}
