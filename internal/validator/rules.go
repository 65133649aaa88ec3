package validator

import (
	"log"

	"parttime_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum rules used by the DTO tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-category", validateJobCategory)
	mustRegister("is-salary-type", validateSalaryType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are handled by 'required'
	}
	return models.UserRole(value).Valid()
}

func validateJobCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobCategory(value).Valid()
}

func validateSalaryType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.SalaryType(value).Valid()
}
