package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/config"
	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
)

// ToggleFavorite flips the caller's favorite for a car and answers with
// the resulting state. Only POST mutates; every other verb is rejected
// before touching anything.
func ToggleFavorite(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request",
		})
	}

	carID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request",
		})
	}

	var car models.Car
	if err := initializers.DB.First(&car, carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":   "404",
				"status": "NOT_FOUND",
				"error": fiber.Map{
					"message": "Unable to find car.",
				},
			}, "application/vnd.api+json")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch car.",
			},
		}, "application/vnd.api+json")
	}

	user := c.Locals("user").(models.User)

	isFavorite, favoritesCount, err := models.ToggleFavorite(initializers.DB, user.ID, car.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to toggle favorite.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"is_favorite":     isFavorite,
		"favorites_count": favoritesCount,
	})
}

// MyFavorites lists the caller's favorited cars.
func MyFavorites(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := config.FavoritesPerPage
	offset := (page - 1) * limit

	user := c.Locals("user").(models.User)

	var favorites []models.Favorite
	if err := initializers.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&favorites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch favorites.",
			},
		}, "application/vnd.api+json")
	}

	for i := range favorites {
		if err := initializers.DB.First(&favorites[i].Car, favorites[i].CarID).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Unable to fetch car.",
				},
			}, "application/vnd.api+json")
		}
	}

	var countFavorites int64
	if err := initializers.DB.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Count(&countFavorites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to count favorites.",
			},
		}, "application/vnd.api+json")
	}

	lastPage := int(countFavorites) % limit
	if lastPage == 0 {
		lastPage = int(countFavorites) / limit
	} else {
		lastPage = (int(countFavorites) / limit) + 1
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   favorites,
		"page": fiber.Map{
			"limit":     limit,
			"total":     countFavorites,
			"totalPage": lastPage,
			"current":   page,
		},
	}, "application/vnd.api+json")
}
