package repositories

import (
	"errors"
	"time"

	"parttime_backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

const pgUniqueViolation = "23505"

type ApplicationRepository interface {
	// Create inserts the application. Two concurrent applies for the same
	// (job, applicant) pair are resolved by the unique index, not by locking.
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJobAndApplicant(db *gorm.DB, jobID, applicantID string) (*models.Application, error)
	ListByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	ListByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	// UpdateStatusIf moves the application from exactly `from` to `to`.
	// It reports false when the row was not in `from` anymore, so concurrent
	// transitions resolve to a single winner.
	UpdateStatusIf(db *gorm.DB, id string, from, to models.ApplicationStatus, completedAt *time.Time) (bool, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	err := db.Create(app).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").Preload("Job.Publisher").Preload("Applicant").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndApplicant(db *gorm.DB, jobID, applicantID string) (*models.Application, error) {
	var app models.Application
	err := db.First(&app, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Applicant").Where("job_id = ?", jobID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Preload("Job.Publisher").Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatusIf(db *gorm.DB, id string, from, to models.ApplicationStatus, completedAt *time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	result := db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
