package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ReturnValidation checks every `validate` tag on the body and collects
// all violations into one map keyed by field name.
func ReturnValidation(data interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(data)
	if err == nil {
		return errors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "failed to validate body."
		return errors
	}

	for _, fieldError := range validationErrors {
		errors[fieldError.Field()] = messageForTag(fieldError)
	}

	return errors
}

func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Please provide a valid email address."
	case "min":
		return fmt.Sprintf("Minimum allowed is %s.", fieldError.Param())
	case "max":
		return fmt.Sprintf("Maximum allowed is %s.", fieldError.Param())
	case "gt":
		return fmt.Sprintf("Value must be greater than %s.", fieldError.Param())
	case "gte":
		return fmt.Sprintf("Value must be at least %s.", fieldError.Param())
	default:
		return "Invalid value."
	}
}
