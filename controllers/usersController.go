package controllers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
	"github.com/Nasipbek2003/rentacar/validation"
)

// RegisterForm returns the empty registration form context.
func RegisterForm(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"form": fiber.Map{
			"fields": []string{"username", "email", "password", "repeatPassword", "firstName", "lastName"},
		},
	}, "application/vnd.api+json")
}

// SignUp creates the account together with its empty profile; the two
// rows are one transaction so no user ever exists without a profile.
func SignUp(c *fiber.Ctx) error {
	var body struct {
		Username       string `json:"username" form:"username" validate:"required,min=3,max=64"`
		Email          string `json:"email" form:"email" validate:"required,email,max=256"`
		Password       string `json:"password" form:"password" validate:"required,min=8"`
		RepeatPassword string `json:"repeatPassword" form:"repeatPassword" validate:"required,eqfield=Password"`
		FirstName      string `json:"firstName" form:"firstName" validate:"required,max=128"`
		LastName       string `json:"lastName" form:"lastName" validate:"required,max=128"`
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

	var usernameTaken uint
	if result := initializers.DB.Raw("SELECT 1 FROM users WHERE username = ?;", body.Username).Scan(&usernameTaken); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query users.",
			},
		}, "application/vnd.api+json")
	}
	if usernameTaken == 1 {
		errs["Username"] = "This username is already taken."
	}

	var emailTaken uint
	if result := initializers.DB.Raw("SELECT 1 FROM users WHERE email = ?;", body.Email).Scan(&emailTaken); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to query users.",
			},
		}, "application/vnd.api+json")
	}
	if emailTaken == 1 {
		errs["Email"] = "This email is already registered."
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"errors": errs,
		}, "application/vnd.api+json")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to hash password.",
			},
		}, "application/vnd.api+json")
	}

	user := models.User{
		Username:  body.Username,
		Email:     body.Email,
		Password:  string(hash),
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: user.ID}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "failed to create user.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":    "201",
		"status":  "CREATED",
		"message": "Account created for " + body.Username + ". You can now log in.",
	}, "application/vnd.api+json")
}

func Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
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

	var user models.User
	initializers.DB.First(&user, "email = ?", body.Email)

	if user.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "invalid user email or password.",
			},
		}, "application/vnd.api+json")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "invalid user email or password.",
			},
		}, "application/vnd.api+json")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT.SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Unable to generate JWT token.",
			},
		}, "application/vnd.api+json")
	}

	cookie := new(fiber.Cookie)
	cookie.Name = "Authorization"
	cookie.Value = tokenString
	cookie.MaxAge = 3600 * 24
	cookie.Secure = false
	cookie.HTTPOnly = true
	cookie.Expires = time.Now().Add(24 * time.Hour)
	cookie.SameSite = "lax"
	c.Cookie(cookie)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
	}, "application/vnd.api+json")
}

func Validate(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Already login.",
		"user_data": c.Locals("user"),
	})
}
