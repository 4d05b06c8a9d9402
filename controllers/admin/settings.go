package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
	"gorm.io/gorm/clause"
)

// GetSettings lists every system setting.
func GetSettings(c *fiber.Ctx) error {
	var settings []models.SystemSetting
	if err := db.DB.Order("key ASC").Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch settings",
		})
	}
	return c.JSON(settings)
}

// UpsertSetting creates or updates a key/value setting.
func UpsertSetting(c *fiber.Ctx) error {
	var setting models.SystemSetting
	if err := c.BodyParser(&setting); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if setting.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Setting key is required",
		})
	}

	if err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save setting",
		})
	}

	return c.JSON(setting)
}
