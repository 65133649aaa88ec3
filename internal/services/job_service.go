package services

import (
	"parttime_backend/internal/auth"
	"parttime_backend/internal/models"
	"parttime_backend/internal/repositories"
	"parttime_backend/internal/services/dto"
	"parttime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, applicationRepo repositories.ApplicationRepository) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// Create publishes a new job. The creator becomes the publisher; status
// starts open.
func (s *JobService) Create(db *gorm.DB, publisherID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		PublisherID:  publisherID,
		Title:        req.Title,
		Category:     models.JobCategory(req.Category),
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		SalaryType:   models.SalaryType(req.SalaryType),
		Location:     req.Location,
		Duration:     req.Duration,
		Positions:    req.Positions,
		Contact:      req.Contact,
		Status:       models.JobStatusOpen,
	}
	if job.SalaryType == "" {
		job.SalaryType = models.SalaryTypeHourly
	}
	if job.Positions == 0 {
		job.Positions = 1
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// List runs the filter engine over open jobs. Closed jobs are never
// candidates; the filter is returned normalized so the caller can echo it.
func (s *JobService) List(db *gorm.DB, filter *repositories.JobFilter) ([]*dto.JobResponse, int64, error) {
	jobs, total, err := s.jobRepo.ListOpen(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewJobResponses(jobs), total, nil
}

// Get returns the detail view for any job regardless of status. When
// requesterID is set, the view reports whether that user already applied.
func (s *JobService) Get(db *gorm.DB, jobID, requesterID string) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applied, accepted, err := s.jobRepo.CountApplications(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	detail := &dto.JobDetailResponse{
		Job:           dto.NewJobResponse(job),
		AppliedCount:  applied,
		AcceptedCount: accepted,
	}

	if requesterID != "" {
		app, err := s.applicationRepo.FindByJobAndApplicant(db, jobID, requesterID)
		if err == nil {
			detail.HasApplied = true
			detail.UserApplication = dto.NewApplicationResponse(app)
		} else if err != repositories.ErrApplicationNotFound {
			return nil, apperrors.InternalError(err)
		}
	}

	return detail, nil
}

// Update edits job fields. Publisher only; status is not editable here.
func (s *JobService) Update(db *gorm.DB, jobID, actorID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.IsJobOwner(actorID, job).Allowed {
		return nil, apperrors.ErrNotJobPublisher
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Category != nil {
		job.Category = models.JobCategory(*req.Category)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.SalaryType != nil {
		job.SalaryType = models.SalaryType(*req.SalaryType)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Duration != nil {
		job.Duration = *req.Duration
	}
	if req.Positions != nil {
		job.Positions = *req.Positions
	}
	if req.Contact != nil {
		job.Contact = *req.Contact
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// Close ends recruiting. One-way: open -> closed; closing an already closed
// job is a no-op, and nothing ever reopens one.
func (s *JobService) Close(db *gorm.DB, jobID, actorID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.IsJobOwner(actorID, job).Allowed {
		return apperrors.ErrNotJobPublisher
	}

	if err := s.jobRepo.UpdateStatus(db, jobID, models.JobStatusClosed); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete removes the job and all of its applications.
func (s *JobService) Delete(db *gorm.DB, jobID, actorID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.IsJobOwner(actorID, job).Allowed {
		return apperrors.ErrNotJobPublisher
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListByPublisher returns the caller's own jobs, newest first, any status.
func (s *JobService) ListByPublisher(db *gorm.DB, publisherID string) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListByPublisher(db, publisherID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponses(jobs), nil
}
