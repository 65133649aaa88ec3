package dto

import (
	"time"

	"parttime_backend/internal/models"
)

type ApplyRequest struct {
	Message string `json:"message" validate:"required"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	Message     string                   `json:"message"`
	Status      models.ApplicationStatus `json:"status"`
	Job         *JobResponse             `json:"job,omitempty"`
	Applicant   *UserResponse            `json:"applicant,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
}

func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	if app == nil {
		return nil
	}
	return &ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		Message:     app.Message,
		Status:      app.Status,
		Job:         NewJobResponse(app.Job),
		Applicant:   NewUserResponse(app.Applicant),
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
		CompletedAt: app.CompletedAt,
	}
}

func NewApplicationResponses(apps []models.Application) []*ApplicationResponse {
	out := make([]*ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
