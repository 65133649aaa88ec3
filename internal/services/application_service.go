package services

import (
	"fmt"
	"time"

	"parttime_backend/internal/auth"
	"parttime_backend/internal/models"
	"parttime_backend/internal/repositories"
	"parttime_backend/internal/services/dto"
	"parttime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	emailService    *EmailService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	emailService *EmailService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		emailService:    emailService,
	}
}

// Apply submits an application for a job. Preconditions: the job is open,
// the applicant is not the publisher, and no application exists yet for
// this (job, applicant) pair. The race between two concurrent applies is
// settled by the unique index, not here.
func (s *ApplicationService) Apply(db *gorm.DB, jobID, applicantID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if auth.IsJobOwner(applicantID, job).Allowed {
		return nil, apperrors.ErrSelfApplication
	}
	if !job.IsOpen() {
		return nil, apperrors.ErrJobNotOpen
	}

	if _, err := s.applicationRepo.FindByJobAndApplicant(db, jobID, applicantID); err == nil {
		return nil, apperrors.ErrDuplicateApplication(repositories.ErrDuplicateApplication)
	} else if err != repositories.ErrApplicationNotFound {
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Message:     req.Message,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, app); err != nil {
		if err == repositories.ErrDuplicateApplication {
			return nil, apperrors.ErrDuplicateApplication(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Publisher != nil {
		applicant, err := s.userRepo.FindByID(db, applicantID)
		if err == nil {
			go s.emailService.NotifyApplicationReceived(job.Publisher.Email, job.Title, applicant.Username)
		}
	}

	app.Job = job
	return dto.NewApplicationResponse(app), nil
}

// transitionRule describes one row of the lifecycle table: who may trigger
// the move and which status it must start from.
type transitionRule struct {
	from  models.ApplicationStatus
	to    models.ApplicationStatus
	guard func(actorID string, app *models.Application) auth.Decision
}

var transitionRules = map[string]transitionRule{
	"accepted": {
		from:  models.ApplicationStatusPending,
		to:    models.ApplicationStatusAccepted,
		guard: auth.IsJobOwnerOfApplication,
	},
	"rejected": {
		from:  models.ApplicationStatusPending,
		to:    models.ApplicationStatusRejected,
		guard: auth.IsJobOwnerOfApplication,
	},
	"withdraw": {
		from:  models.ApplicationStatusPending,
		to:    models.ApplicationStatusWithdrawn,
		guard: auth.IsApplicant,
	},
	"complete": {
		from:  models.ApplicationStatusAccepted,
		to:    models.ApplicationStatusCompleted,
		guard: auth.CanViewManagement,
	},
}

// Transition applies one lifecycle action ("accepted", "rejected",
// "withdraw", "complete") to the application. A disallowed actor gets an
// authorization error, a wrong starting status a state error; either way the
// record is left unchanged. The status update itself is conditional on the
// expected starting status, so concurrent transitions resolve to one winner.
func (s *ApplicationService) Transition(db *gorm.DB, applicationID, actorID, action string) (*dto.ApplicationResponse, error) {
	rule, ok := transitionRules[action]
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Unknown application action: %s", action))
	}

	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !rule.guard(actorID, app).Allowed {
		return nil, apperrors.ErrNotApplicationParty
	}

	if app.Status != rule.from || !app.Status.CanTransitionTo(rule.to) {
		return nil, apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Cannot move application from '%s' to '%s'", app.Status, rule.to))
	}

	var completedAt *time.Time
	if rule.to == models.ApplicationStatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	moved, err := s.applicationRepo.UpdateStatusIf(db, applicationID, rule.from, rule.to, completedAt)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !moved {
		// Lost the race: another request transitioned the record first.
		return nil, apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Application is no longer '%s'", rule.from))
	}

	app.Status = rule.to
	app.CompletedAt = completedAt

	s.notifyDecision(app, rule.to)

	return dto.NewApplicationResponse(app), nil
}

func (s *ApplicationService) notifyDecision(app *models.Application, status models.ApplicationStatus) {
	if app.Applicant == nil || app.Job == nil {
		return
	}
	switch status {
	case models.ApplicationStatusAccepted:
		go s.emailService.NotifyApplicationAccepted(app.Applicant.Email, app.Job.Title)
	case models.ApplicationStatusRejected:
		go s.emailService.NotifyApplicationRejected(app.Applicant.Email, app.Job.Title)
	}
}

// ListByJob is the publisher's management view for one job.
func (s *ApplicationService) ListByJob(db *gorm.DB, jobID, actorID string) ([]*dto.ApplicationResponse, error) {
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

	apps, err := s.applicationRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}

// ListByApplicant returns the caller's own applications, newest first.
func (s *ApplicationService) ListByApplicant(db *gorm.DB, applicantID string) ([]*dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.ListByApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}
