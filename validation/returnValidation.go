package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ReturnValidation runs the struct's validate tags and maps every
// failing field to a user-facing message. An empty map means the input
// passed.
func ReturnValidation(s interface{}) map[string]string {
	errors := make(map[string]string)
	err := validate.Struct(s)
	if err == nil {
		return errors
	}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors[fieldErr.Field()] = message(fieldErr)
	}
	return errors
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Must be %s or more.", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("Must be %s or less.", fieldErr.Param())
	case "eqfield":
		return "Passwords do not match."
	default:
		return fmt.Sprintf("Invalid value for %s.", fieldErr.Field())
	}
}
