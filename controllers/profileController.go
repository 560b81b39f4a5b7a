package controllers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sethvargo/go-password/password"

	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
	"github.com/Nasipbek2003/rentacar/validation"
)

const dateOfBirthLayout = "2006-01-02"

func profileStats(userID uint) (fiber.Map, error) {
	var ordersCount, favoritesCount, reviewsCount int64
	if err := initializers.DB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&ordersCount).Error; err != nil {
		return nil, err
	}
	if err := initializers.DB.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&favoritesCount).Error; err != nil {
		return nil, err
	}
	if err := initializers.DB.Model(&models.Review{}).Where("user_id = ?", userID).Count(&reviewsCount).Error; err != nil {
		return nil, err
	}
	return fiber.Map{
		"ordersCount":    ordersCount,
		"favoritesCount": favoritesCount,
		"reviewsCount":   reviewsCount,
	}, nil
}

// Profile renders the caller's profile, creating it on first access.
func Profile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	profile, err := models.GetOrCreateProfile(initializers.DB, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch profile.",
			},
		}, "application/vnd.api+json")
	}
	if profile.Avatar != "" {
		profile.Avatar = fmt.Sprintf("%s/img/%s", c.BaseURL(), profile.Avatar)
	}

	stats, err := profileStats(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch profile stats.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data": fiber.Map{
			"user":    user,
			"profile": profile,
		},
		"meta": stats,
	}, "application/vnd.api+json")
}

// UpdateProfile applies validated field updates to the caller's
// profile, including an optional avatar upload.
func UpdateProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	profile, err := models.GetOrCreateProfile(initializers.DB, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch profile.",
			},
		}, "application/vnd.api+json")
	}

	var body struct {
		Phone         string `json:"phone" form:"phone" validate:"max=20"`
		DateOfBirth   string `json:"dateOfBirth" form:"dateOfBirth"`
		DriverLicense string `json:"driverLicense" form:"driverLicense" validate:"max=50"`
	}

	if c.BodyParser(&body) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "failed to read body.",
			},
		}, "application/vnd.api+json")
	}

	errs := validation.ReturnValidation(&body)

	var dateOfBirth *time.Time
	if body.DateOfBirth != "" {
		parsed, err := time.Parse(dateOfBirthLayout, body.DateOfBirth)
		if err != nil {
			errs["DateOfBirth"] = "Enter a valid date."
		} else {
			dateOfBirth = &parsed
		}
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errs,
		}, "application/vnd.api+json")
	}

	if file, err := c.FormFile("avatar"); err == nil {
		if !validation.CheckFileMime(file.Header.Get("Content-Type")) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":   "400",
				"status": "BAD_REQUEST",
				"errors": fiber.Map{
					"avatar": "Unsupported image format.",
				},
			}, "application/vnd.api+json")
		}
		if !validation.CheckFileSize(uint64(file.Size), 1) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":   "400",
				"status": "BAD_REQUEST",
				"errors": fiber.Map{
					"avatar": "Image is too large.",
				},
			}, "application/vnd.api+json")
		}

		res, err := password.Generate(16, 16, 0, false, true)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "unable to create random name.",
				},
			}, "application/vnd.api+json")
		}
		filenameList := strings.Split(file.Filename, ".")
		ext := filenameList[len(filenameList)-1]
		filename := strconv.FormatInt(time.Now().Unix(), 10) + "_" + res + "." + ext

		dir, err := imageDir()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Unable to resolve image directory.",
				},
			}, "application/vnd.api+json")
		}
		if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Unable to save image.",
				},
			}, "application/vnd.api+json")
		}
		profile.Avatar = filename
	}

	profile.Phone = body.Phone
	profile.DateOfBirth = dateOfBirth
	profile.DriverLicense = body.DriverLicense

	if result := initializers.DB.Save(&profile); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to save profile.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    "200",
		"status":  "OK",
		"message": "Profile updated.",
		"data":    profile,
	}, "application/vnd.api+json")
}
