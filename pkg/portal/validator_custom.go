package portal

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func registerCustomValidations(v *validator.Validate) {
	if v == nil {
		return
	}

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic("portal: failed to register notblank validation: " + err.Error())
	}
}

// validateNotBlank rejects strings made only of whitespace, which "required"
// lets through.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
