package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/models"
)

func Unauthorized() fiber.Map {
	return fiber.Map{
		"code":   "401",
		"status": "UNAUTHORIZED",
		"error": fiber.Map{
			"message": "Log in to continue.",
		},
	}
}

func InternalServerError() fiber.Map {
	return fiber.Map{
		"code":   "500",
		"status": "INTERNAL_SERVER_ERROR",
		"error": fiber.Map{
			"message": "Something went wrong on our side.",
		},
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	var header struct {
		Authorization string `reqHeader:"Authorization"`
	}

	tokenString := ""
	if err := c.ReqHeaderParser(&header); err == nil {
		tokenString = header.Authorization
	}
	if tokenString == "" {
		tokenString = c.Cookies("Authorization")
	}
	if parts := strings.Split(tokenString, " "); len(parts) > 1 {
		tokenString = parts[1]
	}
	if tokenString == "undefined" {
		return ""
	}
	return tokenString
}

func userFromToken(tokenString string) (models.User, error) {
	var user models.User

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT.SECRET")), nil
	})
	if err != nil {
		return user, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return user, errors.New("unexpected token claims")
	}
	exp, ok := claims["exp"].(float64)
	if !ok || float64(time.Now().Unix()) > exp {
		return user, errors.New("token expired")
	}

	if result := initializers.DB.Raw("SELECT * FROM users WHERE id = ?", claims["sub"]).Scan(&user); result.Error != nil {
		return user, result.Error
	}
	if user.ID == 0 {
		return user, errors.New("user not found")
	}
	return user, nil
}

// RequireAuth rejects the request unless a valid session token names an
// existing user, which is then attached to c.Locals("user").
func RequireAuth(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	user, err := userFromToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(Unauthorized())
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth attaches the user when a valid session token is present
// and continues anonymously otherwise. Public pages that personalize
// (favorite markers on the car detail page) use this.
func OptionalAuth(c *fiber.Ctx) error {
	if tokenString := tokenFromRequest(c); tokenString != "" {
		if user, err := userFromToken(tokenString); err == nil {
			c.Locals("user", user)
		}
	}
	return c.Next()
}
