package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
	"github.com/Nasipbek2003/rentacar/validation"
)

func carForReview(c *fiber.Ctx) (models.Car, bool, error) {
	var car models.Car

	carID, err := c.ParamsInt("id")
	if err != nil {
		return car, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": err.Error(),
			},
		}, "application/vnd.api+json")
	}

	if err := initializers.DB.First(&car, carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return car, false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":   "404",
				"status": "NOT_FOUND",
				"error": fiber.Map{
					"message": "Unable to find car.",
				},
			}, "application/vnd.api+json")
		}
		return car, false, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch car.",
			},
		}, "application/vnd.api+json")
	}

	return car, true, nil
}

// neverRented is the guided redirect back to the car page for callers
// who try to review a car they have not rented. Not an error response;
// nothing changed.
func neverRented(c *fiber.Ctx, car models.Car) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    "200",
		"status":  "OK",
		"message": "You can only review cars you have rented.",
		"links": fiber.Map{
			"car": fmt.Sprintf("%s/car/%d/%s", c.BaseURL(), car.ID, car.Slug),
		},
	}, "application/vnd.api+json")
}

// ReviewForm returns the review form context, including the caller's
// existing review when there is one to edit.
func ReviewForm(c *fiber.Ctx) error {
	car, ok, err := carForReview(c)
	if !ok {
		return err
	}

	user := c.Locals("user").(models.User)

	hasRented, err := models.HasRented(initializers.DB, user.ID, car.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to check rental history.",
			},
		}, "application/vnd.api+json")
	}
	if !hasRented {
		return neverRented(c, car)
	}

	var existing *models.Review
	var review models.Review
	switch err := initializers.DB.Where("user_id = ? AND car_id = ?", user.ID, car.ID).First(&review).Error; {
	case err == nil:
		existing = &review
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch review.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   car,
		"meta": fiber.Map{
			"existingReview": existing,
		},
	}, "application/vnd.api+json")
}

// AddReview upserts the caller's review for a rented car and refreshes
// the car's aggregate rating in the same transaction.
func AddReview(c *fiber.Ctx) error {
	car, ok, err := carForReview(c)
	if !ok {
		return err
	}

	user := c.Locals("user").(models.User)

	hasRented, err := models.HasRented(initializers.DB, user.ID, car.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to check rental history.",
			},
		}, "application/vnd.api+json")
	}
	if !hasRented {
		return neverRented(c, car)
	}

	var body struct {
		Rating  int    `json:"rating" form:"rating" validate:"required,gte=1,lte=5"`
		Comment string `json:"comment" form:"comment" validate:"required"`
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

	if errs := validation.ReturnValidation(&body); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errs,
		}, "application/vnd.api+json")
	}

	review, err := models.UpsertReview(initializers.DB, user.ID, car.ID, body.Rating, body.Comment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to save review.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":    "201",
		"status":  "CREATED",
		"message": "Your review has been saved.",
		"data":    review,
		"links": fiber.Map{
			"car": fmt.Sprintf("%s/car/%d/%s", c.BaseURL(), car.ID, car.Slug),
		},
	}, "application/vnd.api+json")
}
