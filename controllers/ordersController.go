package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/config"
	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
	"github.com/Nasipbek2003/rentacar/validation"
)

// bookingDateLayout matches the datetime-local input the booking form
// submits.
const bookingDateLayout = "2006-01-02T15:04"

func availableCar(c *fiber.Ctx) (models.Car, bool, error) {
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

	if err := initializers.DB.Where("available = ?", true).First(&car, carID).Error; err != nil {
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

// BookCarForm returns the booking form context: the car plus contact
// fields pre-filled from the caller's profile.
func BookCarForm(c *fiber.Ctx) error {
	car, ok, err := availableCar(c)
	if !ok {
		return err
	}

	user := c.Locals("user").(models.User)

	phone := ""
	var profile models.UserProfile
	if result := initializers.DB.Raw("SELECT * FROM user_profiles WHERE user_id = ?", user.ID).Scan(&profile); result.Error == nil {
		phone = profile.Phone
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   car,
		"form": fiber.Map{
			"phone": phone,
			"email": user.Email,
		},
	}, "application/vnd.api+json")
}

// BookCar places a rental order. The total is computed here, never
// taken from the client. Overlapping orders for the same car are
// allowed.
func BookCar(c *fiber.Ctx) error {
	car, ok, err := availableCar(c)
	if !ok {
		return err
	}

	user := c.Locals("user").(models.User)

	var body struct {
		StartDate        string `json:"startDate" form:"startDate" validate:"required"`
		EndDate          string `json:"endDate" form:"endDate" validate:"required"`
		PickupLocation   string `json:"pickupLocation" form:"pickupLocation" validate:"required,max=200"`
		ReturnLocation   string `json:"returnLocation" form:"returnLocation" validate:"required,max=200"`
		Phone            string `json:"phone" form:"phone" validate:"required,max=20"`
		Email            string `json:"email" form:"email" validate:"required,email"`
		Notes            string `json:"notes" form:"notes"`
		ChildSeat        bool   `json:"childSeat" form:"childSeat"`
		AdditionalDriver bool   `json:"additionalDriver" form:"additionalDriver"`
		Insurance        bool   `json:"insurance" form:"insurance"`
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

	var startDate, endDate time.Time
	if body.StartDate != "" {
		if startDate, err = time.Parse(bookingDateLayout, body.StartDate); err != nil {
			errs["StartDate"] = "Enter a valid date and time."
		}
	}
	if body.EndDate != "" {
		if endDate, err = time.Parse(bookingDateLayout, body.EndDate); err != nil {
			errs["EndDate"] = "Enter a valid date and time."
		}
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errs,
		}, "application/vnd.api+json")
	}

	order := models.Order{
		UserID:           user.ID,
		CarID:            car.ID,
		StartDate:        startDate,
		EndDate:          endDate,
		PickupLocation:   body.PickupLocation,
		ReturnLocation:   body.ReturnLocation,
		Phone:            body.Phone,
		Email:            body.Email,
		Notes:            body.Notes,
		ChildSeat:        body.ChildSeat,
		AdditionalDriver: body.AdditionalDriver,
		Insurance:        body.Insurance,
		Status:           config.OrderStatusPending,
		TotalPrice:       models.CalculateTotalPrice(car.PricePerDay, startDate, endDate, body.ChildSeat, body.AdditionalDriver, body.Insurance),
	}

	if result := initializers.DB.Create(&order); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to save order.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":    "201",
		"status":  "CREATED",
		"message": "Your order has been placed. We will contact you shortly.",
		"data": fiber.Map{
			"id":          order.ID,
			"total_price": order.TotalPrice,
		},
		"links": fiber.Map{
			"success": fmt.Sprintf("%s/order/%d/success", c.BaseURL(), order.ID),
		},
	}, "application/vnd.api+json")
}

// OrderSuccess shows the confirmation for an order the caller owns.
// Someone else's order id is a 404, not a 403.
func OrderSuccess(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": err.Error(),
			},
		}, "application/vnd.api+json")
	}

	user := c.Locals("user").(models.User)

	var order models.Order
	if err := initializers.DB.Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":   "404",
				"status": "NOT_FOUND",
				"error": fiber.Map{
					"message": "Unable to find order.",
				},
			}, "application/vnd.api+json")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch order.",
			},
		}, "application/vnd.api+json")
	}

	if err := initializers.DB.First(&order.Car, order.CarID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch car.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   order,
	}, "application/vnd.api+json")
}

// MyOrders lists the caller's orders, newest first.
func MyOrders(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := config.OrdersPerPage
	offset := (page - 1) * limit

	user := c.Locals("user").(models.User)

	var orders []models.Order
	if err := initializers.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to fetch orders.",
			},
		}, "application/vnd.api+json")
	}

	for i := range orders {
		if err := initializers.DB.First(&orders[i].Car, orders[i].CarID).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Unable to fetch car.",
				},
			}, "application/vnd.api+json")
		}
	}

	var countOrders int64
	if err := initializers.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&countOrders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to count orders.",
			},
		}, "application/vnd.api+json")
	}

	lastPage := int(countOrders) % limit
	if lastPage == 0 {
		lastPage = int(countOrders) / limit
	} else {
		lastPage = (int(countOrders) / limit) + 1
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   orders,
		"page": fiber.Map{
			"limit":     limit,
			"total":     countOrders,
			"totalPage": lastPage,
			"current":   page,
		},
	}, "application/vnd.api+json")
}
