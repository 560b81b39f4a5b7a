package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/config"
	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
	"github.com/Nasipbek2003/rentacar/validation"
)

// ListCars renders the catalog: every filter is optional, blank or
// malformed filter inputs are dropped rather than failing the request.
func ListCars(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := config.CarsPerPage
	sortKey := c.Query("sort", "")

	query := initializers.DB.Model(&models.Car{}).Where("available = ?", true)

	if search := c.Query("search", ""); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR brand ILIKE ? OR model ILIKE ? OR description ILIKE ?", pattern, pattern, pattern, pattern)
	}
	if brand := c.Query("brand", ""); brand != "" {
		query = query.Where("brand ILIKE ?", "%"+brand+"%")
	}
	if minPrice, err := decimal.NewFromString(c.Query("min_price", "")); err == nil {
		query = query.Where("price_per_day >= ?", minPrice)
	}
	if maxPrice, err := decimal.NewFromString(c.Query("max_price", "")); err == nil {
		query = query.Where("price_per_day <= ?", maxPrice)
	}
	if fuelType := c.Query("fuel_type", ""); validation.OneOf(fuelType, config.FuelTypes) {
		query = query.Where("fuel_type = ?", fuelType)
	}
	if transmission := c.Query("transmission", ""); validation.OneOf(transmission, config.Transmissions) {
		query = query.Where("transmission = ?", transmission)
	}
	if seats := c.QueryInt("seats", 0); seats > 0 {
		query = query.Where("seats >= ?", seats)
	}

	var countCars int64
	if err := query.Count(&countCars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to count cars.",
			},
		}, "application/vnd.api+json")
	}

	switch sortKey {
	case "price_asc":
		query = query.Order("price_per_day ASC")
	case "price_desc":
		query = query.Order("price_per_day DESC")
	case "rating":
		query = query.Order("rating DESC")
	case "year":
		query = query.Order("year DESC")
	default:
		// unknown sort keys fall back to newest first; the requested
		// key is still echoed back untouched
		query = query.Order("created_at DESC")
	}

	var cars []models.Car
	if err := query.Limit(limit).Offset((page - 1) * limit).Find(&cars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch cars.",
			},
		}, "application/vnd.api+json")
	}

	var totalCars int64
	if err := initializers.DB.Model(&models.Car{}).Where("available = ?", true).Count(&totalCars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to count cars.",
			},
		}, "application/vnd.api+json")
	}

	var categories []models.CarCategory
	if err := initializers.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch categories.",
			},
		}, "application/vnd.api+json")
	}

	var featuredCars []models.Car
	if err := initializers.DB.Where("available = ? AND rating >= ?", true, config.FeaturedRatingFloor).
		Order("created_at DESC").Limit(config.FeaturedCarsLimit).Find(&featuredCars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch featured cars.",
			},
		}, "application/vnd.api+json")
	}

	lastPage := int(countCars) % limit
	if lastPage == 0 {
		lastPage = int(countCars) / limit
	} else {
		lastPage = (int(countCars) / limit) + 1
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   cars,
		"meta": fiber.Map{
			"totalCars":    totalCars,
			"categories":   categories,
			"featuredCars": featuredCars,
			"currentSort":  sortKey,
		},
		"page": fiber.Map{
			"limit":     limit,
			"total":     countCars,
			"totalPage": lastPage,
			"current":   page,
		},
	}, "application/vnd.api+json")
}

type reviewWithAuthor struct {
	ID        uint      `gorm:"column:id" json:"id"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	Comment   string    `gorm:"column:comment" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
}

// CarDetail renders a single car. The trailing slug segment is
// cosmetic; only the id decides the lookup.
func CarDetail(c *fiber.Ctx) error {
	carID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": err.Error(),
			},
		}, "application/vnd.api+json")
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

	var reviews []reviewWithAuthor
	if result := initializers.DB.Raw("SELECT reviews.id, reviews.rating, reviews.comment, reviews.created_at, users.first_name, users.last_name FROM reviews JOIN users ON users.id = reviews.user_id WHERE reviews.car_id = ? ORDER BY reviews.created_at DESC LIMIT ?", car.ID, config.RecentReviewsLimit).Scan(&reviews); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch reviews.",
			},
		}, "application/vnd.api+json")
	}

	isFavorite := false
	if user, ok := c.Locals("user").(models.User); ok {
		isFavorite, err = models.IsFavorited(initializers.DB, user.ID, car.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Unable to fetch favorite state.",
				},
			}, "application/vnd.api+json")
		}
	}

	var similarCars []models.Car
	if err := initializers.DB.Where("brand = ? AND available = ? AND id <> ?", car.Brand, true, car.ID).
		Order("created_at DESC").Limit(config.SimilarCarsLimit).Find(&similarCars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch similar cars.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   car,
		"meta": fiber.Map{
			"reviews":     reviews,
			"isFavorite":  isFavorite,
			"similarCars": similarCars,
		},
	}, "application/vnd.api+json")
}
