package controllers

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUpForm() url.Values {
	form := url.Values{}
	form.Set("username", "nasip")
	form.Set("email", "nasip@example.com")
	form.Set("password", "supersecret")
	form.Set("repeatPassword", "supersecret")
	form.Set("firstName", "Nasip")
	form.Set("lastName", "Bekov")
	return form
}

func TestSignUpCreatesUserWithProfile(t *testing.T) {
	mock := newMockDb(t)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectQuery(`SELECT 1 FROM users WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "user_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	app := fiber.New()
	app.Post("/register", SignUp)

	req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader(signUpForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Account created for nasip.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpRejectsTakenUsername(t *testing.T) {
	mock := newMockDb(t)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`SELECT 1 FROM users WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	app := fiber.New()
	app.Post("/register", SignUp)

	req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader(signUpForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "This username is already taken.")
	// no user and no profile were created
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpRejectsPasswordMismatch(t *testing.T) {
	mock := newMockDb(t)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectQuery(`SELECT 1 FROM users WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	form := signUpForm()
	form.Set("repeatPassword", "different")

	app := fiber.New()
	app.Post("/register", SignUp)

	req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Passwords do not match.")
	assert.NoError(t, mock.ExpectationsWereMet())
}
