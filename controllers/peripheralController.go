package controllers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// imageDir resolves the public image directory next to the binary.
// Avatar uploads are written here and GetImg serves from here.
func imageDir() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "public", "image"), nil
}

// GetImg serves a stored image by its filename.
func GetImg(c *fiber.Ctx) error {
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

	return c.SendFile(filepath.Join(dir, c.Params("name")))
}
