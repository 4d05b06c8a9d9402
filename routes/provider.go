package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/controllers/provider"
	"github.com/sudharlo/sapzap/middleware"
	"github.com/sudharlo/sapzap/models"
)

// SetupProviderRoutes configures provider catalog management and KYC routes
func SetupProviderRoutes(app *fiber.App) {
	providerGroup := app.Group("/api/provider",
		middleware.Protected(),
		middleware.RequireRole(models.RoleServiceProvider))

	providerGroup.Get("/profile", provider.GetProviderProfile)
	providerGroup.Put("/profile", provider.UpdateProviderProfile)

	providerGroup.Post("/services", provider.CreateProviderService)
	providerGroup.Get("/services", provider.GetProviderServices)
	providerGroup.Put("/services/:id", provider.UpdateProviderService)
	providerGroup.Patch("/services/:id/status", provider.UpdateProviderServiceStatus)
	providerGroup.Delete("/services/:id", provider.DeleteProviderService)

	kyc := app.Group("/api/kyc",
		middleware.Protected(),
		middleware.RequireRole(models.RoleServiceProvider))
	kyc.Post("/submit", provider.SubmitKYC)
	kyc.Post("/upload-documents", provider.UploadKYCDocuments)
	kyc.Get("/status", provider.GetKYCStatus)
}
