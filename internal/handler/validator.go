package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("wheelcolor", validateWheelColor)
	_ = v.RegisterValidation("slot", validateSlot)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the lowercased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "wheelcolor":
			errs[field] = "Must be red, black or green"
		case "slot":
			errs[field] = "Must be avatar, banner or character"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateWheelColor(fl validator.FieldLevel) bool {
	return domain.RouletteColor(strings.ToLower(fl.Field().String())).Valid()
}

func validateSlot(fl validator.FieldLevel) bool {
	return domain.Slot(strings.ToLower(fl.Field().String())).Valid()
}
