package provider

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/utils"
)

const kycUploadDir = "uploads/kyc"

var (
	aadharPattern = regexp.MustCompile(`^\d{12}$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
)

// SubmitKYC records aadhar and PAN numbers and marks the KYC as submitted.
// Verification itself is done by an admin.
func SubmitKYC(c *fiber.Ctx) error {
	sp, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	type KYCInput struct {
		AadharNumber string `json:"aadhar_number"`
		PanNumber    string `json:"pan_number"`
	}
	input := new(KYCInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if !aadharPattern.MatchString(input.AadharNumber) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Aadhar number must be 12 digits",
		})
	}
	if !panPattern.MatchString(input.PanNumber) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "PAN number format is invalid",
		})
	}

	sp.KYC.AadharNumber = input.AadharNumber
	sp.KYC.PanNumber = input.PanNumber
	sp.KYC.Submitted = true
	sp.KYC.Verified = false

	if err := db.DB.Save(sp).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit KYC",
		})
	}

	return c.JSON(fiber.Map{
		"message": "KYC submitted, pending verification",
		"kyc":     sp.KYC,
	})
}

// UploadKYCDocuments accepts multipart aadhar_file/pan_file uploads and
// stores them under uploads/kyc/ on local disk.
func UploadKYCDocuments(c *fiber.Ctx) error {
	sp, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := os.MkdirAll(kycUploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to prepare upload directory",
		})
	}

	saved := 0
	for _, field := range []string{"aadhar_file", "pan_file"} {
		file, err := c.FormFile(field)
		if err != nil {
			continue // both fields are optional per request
		}

		if err := utils.ValidateKYCFile(file); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		name := utils.KYCFileName(sp.UserID, field, file.Filename, time.Now())
		path := filepath.Join(kycUploadDir, name)
		if err := c.SaveFile(file, path); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save file",
			})
		}

		if field == "aadhar_file" {
			sp.KYC.AadharFile = path
		} else {
			sp.KYC.PanFile = path
		}
		saved++
	}

	if saved == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No KYC documents provided",
		})
	}

	if err := db.DB.Save(sp).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record uploaded documents",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Documents uploaded",
		"kyc":     sp.KYC,
	})
}

// GetKYCStatus returns the submitted/verified flags for the caller.
func GetKYCStatus(c *fiber.Ctx) error {
	sp, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"submitted": sp.KYC.Submitted,
		"verified":  sp.KYC.Verified,
	})
}

// GetProviderProfile returns the caller's provider profile.
func GetProviderProfile(c *fiber.Ctx) error {
	sp, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(sp)
}

// UpdateProviderProfile updates business details and location.
func UpdateProviderProfile(c *fiber.Ctx) error {
	sp, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	type ProfileInput struct {
		BusinessName *string  `json:"business_name"`
		Address      *string  `json:"address"`
		City         *string  `json:"city"`
		State        *string  `json:"state"`
		ZipCode      *string  `json:"zip_code"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.BusinessName != nil {
		sp.BusinessName = *input.BusinessName
	}
	if input.Address != nil {
		sp.Address = *input.Address
	}
	if input.City != nil {
		sp.City = *input.City
	}
	if input.State != nil {
		sp.State = *input.State
	}
	if input.ZipCode != nil {
		sp.ZipCode = *input.ZipCode
	}
	if input.Latitude != nil {
		sp.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		sp.Longitude = *input.Longitude
	}

	if err := db.DB.Save(sp).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update provider profile",
		})
	}

	return c.JSON(sp)
}
