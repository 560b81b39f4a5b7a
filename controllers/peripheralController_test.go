package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageDirResolves(t *testing.T) {
	dir, err := imageDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, "public/image"), dir)
}

func TestGetImgMissingFileIs404(t *testing.T) {
	app := fiber.New()
	app.Get("/img/:name", GetImg)

	req := httptest.NewRequest(fiber.MethodGet, "/img/no-such-image.png", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
