package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
)

// ListUsers returns users, optionally filtered by role.
func ListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := db.DB.Model(&models.User{})
	if role := models.Role(c.Query("role")); role != "" {
		if !role.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid role filter",
			})
		}
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser returns a single user with the provider extension when present.
func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var provider models.ServiceProvider
	if db.DB.Where("user_id = ?", user.ID).First(&provider).RowsAffected > 0 {
		return c.JSON(fiber.Map{
			"user":     user,
			"provider": provider,
		})
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}
