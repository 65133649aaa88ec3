package dto

import (
	"time"

	"parttime_backend/internal/models"
)

type CreateJobRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Category     string  `json:"category" validate:"required,is-job-category"`
	Description  string  `json:"description" validate:"required"`
	Requirements string  `json:"requirements"`
	Salary       float64 `json:"salary" validate:"required,gte=0"`
	SalaryType   string  `json:"salary_type" validate:"omitempty,is-salary-type"`
	Location     string  `json:"location" validate:"required,max=200"`
	Duration     string  `json:"duration" validate:"omitempty,max=100"`
	Positions    int     `json:"positions" validate:"omitempty,min=1"`
	Contact      string  `json:"contact" validate:"required,max=100"`
}

type UpdateJobRequest struct {
	Title        *string  `json:"title" validate:"omitempty,max=200"`
	Category     *string  `json:"category" validate:"omitempty,is-job-category"`
	Description  *string  `json:"description"`
	Requirements *string  `json:"requirements"`
	Salary       *float64 `json:"salary" validate:"omitempty,gte=0"`
	SalaryType   *string  `json:"salary_type" validate:"omitempty,is-salary-type"`
	Location     *string  `json:"location" validate:"omitempty,max=200"`
	Duration     *string  `json:"duration" validate:"omitempty,max=100"`
	Positions    *int     `json:"positions" validate:"omitempty,min=1"`
	Contact      *string  `json:"contact" validate:"omitempty,max=100"`
}

type JobResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Category     models.JobCategory `json:"category"`
	Description  string             `json:"description"`
	Requirements string             `json:"requirements,omitempty"`
	Salary       float64            `json:"salary"`
	SalaryType   models.SalaryType  `json:"salary_type"`
	Location     string             `json:"location"`
	Duration     string             `json:"duration,omitempty"`
	Positions    int                `json:"positions"`
	Contact      string             `json:"contact"`
	Status       models.JobStatus   `json:"status"`
	Publisher    *UserResponse      `json:"publisher,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	if job == nil {
		return nil
	}
	return &JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Category:     job.Category,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
		SalaryType:   job.SalaryType,
		Location:     job.Location,
		Duration:     job.Duration,
		Positions:    job.Positions,
		Contact:      job.Contact,
		Status:       job.Status,
		Publisher:    NewUserResponse(job.Publisher),
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}

func NewJobResponses(jobs []models.Job) []*JobResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

// JobDetailResponse is the detail view: the job plus whether the requester
// has already applied, and their application if so.
type JobDetailResponse struct {
	Job             *JobResponse         `json:"job"`
	AppliedCount    int64                `json:"applied_count"`
	AcceptedCount   int64                `json:"accepted_count"`
	HasApplied      bool                 `json:"has_applied"`
	UserApplication *ApplicationResponse `json:"user_application,omitempty"`
}
