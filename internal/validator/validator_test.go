package validator

import (
	"testing"

	"parttime_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type sampleJobRequest struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Category   string  `json:"category" validate:"required,is-job-category"`
	Salary     float64 `json:"salary" validate:"required,gte=0"`
	SalaryType string  `json:"salary_type" validate:"omitempty,is-salary-type"`
	Positions  int     `json:"positions" validate:"omitempty,min=1"`
}

func TestValidateJobRequest(t *testing.T) {
	v := New()

	valid := sampleJobRequest{
		Title:      "Math tutor",
		Category:   "tutoring",
		Salary:     50,
		SalaryType: "hourly",
		Positions:  2,
	}
	assert.NoError(t, v.Validate(valid))

	invalid := sampleJobRequest{
		Title:      "",
		Category:   "gardening",
		SalaryType: "weekly",
	}
	err := v.Validate(invalid)
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "title")
	assert.Contains(t, vErr.Errors, "category")
	assert.Contains(t, vErr.Errors, "salary_type")
}

func TestValidateUserRoleTag(t *testing.T) {
	v := New()

	type req struct {
		Role string `json:"role" validate:"required,is-user-role"`
	}

	assert.NoError(t, v.Validate(req{Role: "student"}))
	assert.NoError(t, v.Validate(req{Role: "employer"}))
	assert.Error(t, v.Validate(req{Role: "admin"}))
}

func TestValidateRegistrationSchemas(t *testing.T) {
	// Students may omit the phone.
	err := ValidateRegistration(models.UserRoleStudent, map[string]string{"phone": ""})
	assert.NoError(t, err)

	// Employers must provide one.
	err = ValidateRegistration(models.UserRoleEmployer, map[string]string{"phone": ""})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "phone")

	err = ValidateRegistration(models.UserRoleEmployer, map[string]string{"phone": "13800000000"})
	assert.NoError(t, err)

	// Unknown roles are rejected outright.
	err = ValidateRegistration(models.UserRole("admin"), nil)
	assert.Error(t, err)
}
