package validator

import (
	"parttime_backend/internal/models"
)

// Registration field requirements differ by the role the caller registers
// with. Instead of one request type per role, the divergent rules live in a
// schema table keyed by role and are applied after the shared struct tags.

// FieldRule names a field and the message used when it is missing.
type FieldRule struct {
	Field   string
	Message string
}

// RegistrationSchema lists the extra required fields for a role.
type RegistrationSchema struct {
	Required []FieldRule
}

var registrationSchemas = map[models.UserRole]RegistrationSchema{
	models.UserRoleStudent: {},
	models.UserRoleEmployer: {
		// Employers must be reachable by applicants.
		Required: []FieldRule{
			{Field: "phone", Message: "Employers must provide a contact phone"},
		},
	},
}

// ValidateRegistration applies the role-selected schema to the given field
// values. fields maps json field name -> submitted value.
func ValidateRegistration(role models.UserRole, fields map[string]string) error {
	schema, ok := registrationSchemas[role]
	if !ok {
		return &ValidationError{Errors: map[string]string{"role": "Must be 'student' or 'employer'"}}
	}

	errs := make(map[string]string)
	for _, rule := range schema.Required {
		if fields[rule.Field] == "" {
			errs[rule.Field] = rule.Message
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
