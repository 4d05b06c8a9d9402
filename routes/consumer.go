package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers"
	"github.com/sudharlo/sapzap/controllers/consumer"
	"github.com/sudharlo/sapzap/middleware"
	"github.com/sudharlo/sapzap/models"
)

// SetupConsumerRoutes configures public discovery and review routes
func SetupConsumerRoutes(app *fiber.App) {
	providers := app.Group("/api/providers")
	providers.Get("/search", consumer.SearchProviders)
	providers.Get("/:id", consumer.GetProvider)
	providers.Get("/:id/reviews", consumer.GetProviderReviews)

	reviews := app.Group("/api/reviews")
	reviews.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleCustomer), consumer.CreateReview)
	reviews.Get("/provider/:id", consumer.GetProviderReviews)

	// Public catalog
	app.Get("/api/services/categories", controllers.GetServiceCategories)
	app.Get("/api/categories/:id/services", controllers.GetCategoryServices)
}
