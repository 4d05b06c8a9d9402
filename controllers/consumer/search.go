package consumer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
	"gorm.io/gorm"
)

// haversine distance in km between the query point and the provider row.
const haversineExpr = "6371 * acos(least(1.0, cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + sin(radians(?)) * sin(radians(latitude))))"

// SearchProviders filters providers by service, category, price range,
// rating and distance. Provider filters and offering filters are resolved in
// a single JOIN; the enabled services for the result page are loaded in one
// extra query.
func SearchProviders(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	// Fresh builder per execution: GORM mutates the chained statement, so
	// the count and the page query each get their own.
	buildQuery := func() *gorm.DB {
		query := db.DB.Model(&models.ServiceProvider{}).
			Joins("JOIN provider_services ON provider_services.provider_id = service_providers.id AND provider_services.deleted_at IS NULL").
			Where("provider_services.is_enabled = ?", true).
			Where("service_providers.kyc_verified = ?", true)

		if serviceID := c.Query("service_id"); serviceID != "" {
			query = query.Where("provider_services.service_id = ?", serviceID)
		}
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Joins("JOIN services ON services.id = provider_services.service_id").
				Where("services.category_id = ?", categoryID)
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			query = query.Where("provider_services.max_price >= ?", minPrice)
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			query = query.Where("provider_services.min_price <= ?", maxPrice)
		}
		if minRating := c.Query("min_rating"); minRating != "" {
			query = query.Where("service_providers.average_rating >= ?", minRating)
		}

		if c.Query("lat") != "" && c.Query("lng") != "" {
			lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
			lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
			radius, radErr := strconv.ParseFloat(c.Query("radius", "25"), 64) // km
			if latErr == nil && lngErr == nil && radErr == nil {
				query = query.Where(haversineExpr+" <= ?", lat, lng, lat, radius)
			}
		}
		return query
	}

	var total int64
	if err := buildQuery().Distinct("service_providers.id").Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search providers",
		})
	}

	var providers []models.ServiceProvider
	if err := buildQuery().Distinct("service_providers.*").
		Preload("User").
		Order("service_providers.average_rating DESC").
		Limit(limit).
		Offset(offset).
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search providers",
		})
	}

	// One query for the whole page's offerings instead of one per provider.
	providerIDs := make([]uint, 0, len(providers))
	for _, p := range providers {
		providerIDs = append(providerIDs, p.ID)
	}
	offeringsByProvider := map[uint][]models.ProviderService{}
	if len(providerIDs) > 0 {
		var offerings []models.ProviderService
		if err := db.DB.Preload("Service").
			Where("provider_id IN ? AND is_enabled = ?", providerIDs, true).
			Find(&offerings).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load provider services",
			})
		}
		for _, o := range offerings {
			offeringsByProvider[o.ProviderID] = append(offeringsByProvider[o.ProviderID], o)
		}
	}

	type providerResult struct {
		models.ServiceProvider
		Services []models.ProviderService `json:"services"`
	}
	results := make([]providerResult, 0, len(providers))
	for _, p := range providers {
		results = append(results, providerResult{
			ServiceProvider: p,
			Services:        offeringsByProvider[p.ID],
		})
	}

	return c.JSON(fiber.Map{
		"providers": results,
		"total":     total,
		"page":      page,
		"limit":     limit,
		"pages":     (int(total) + limit - 1) / limit,
	})
}

// GetProvider returns a provider's public profile with enabled offerings.
func GetProvider(c *fiber.Ctx) error {
	var provider models.ServiceProvider
	if err := db.DB.Preload("User").First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	var offerings []models.ProviderService
	if err := db.DB.Preload("Service.Category").
		Where("provider_id = ? AND is_enabled = ?", provider.ID, true).
		Find(&offerings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load provider services",
		})
	}

	return c.JSON(fiber.Map{
		"provider": provider,
		"services": offerings,
	})
}
