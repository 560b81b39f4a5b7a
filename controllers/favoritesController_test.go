package controllers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/models"
)

func stubUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", models.User{Model: gorm.Model{ID: id}, Email: "user@example.com"})
		return c.Next()
	}
}

func TestToggleFavoriteRejectsNonPost(t *testing.T) {
	app := fiber.New()
	app.All("/car/:id/favorite/toggle", stubUser(9), ToggleFavorite)

	for _, method := range []string{fiber.MethodGet, fiber.MethodPut, fiber.MethodDelete} {
		req := httptest.NewRequest(method, "/car/1/favorite/toggle", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, method)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Invalid request"}`, string(body), method)
	}
}

func TestToggleFavoriteReturnsStateAndCount(t *testing.T) {
	mock := newMockDb(t)

	mock.ExpectQuery(`SELECT \* FROM "cars" WHERE "cars"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "brand", "model", "year", "price_per_day", "available", "slug"}).
			AddRow(3, "Toyota Corolla", "Toyota", "Corolla", 2021, "2000", true, "toyota-corolla-2021"))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE user_id = \$1 AND car_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "car_id", "created_at"}))
	mock.ExpectQuery(`INSERT INTO "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorites" WHERE car_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	app := fiber.New()
	app.All("/car/:id/favorite/toggle", stubUser(9), ToggleFavorite)

	req := httptest.NewRequest(fiber.MethodPost, "/car/3/favorite/toggle", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"is_favorite":true,"favorites_count":1}`, string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}
