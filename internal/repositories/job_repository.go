package repositories

import (
	"errors"
	"strconv"

	"parttime_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter carries the listing parameters as they arrived in the query
// string. A value that fails to parse (bounds) or names an unknown enum
// member (category, salary_type) is treated as absent, never rejected,
// matching the original listing behavior.
type JobFilter struct {
	Search     string `form:"search" json:"search,omitempty"`
	Category   string `form:"category" json:"category,omitempty"`
	SalaryType string `form:"salary_type" json:"salary_type,omitempty"`
	MinSalary  string `form:"min_salary" json:"min_salary,omitempty"`
	MaxSalary  string `form:"max_salary" json:"max_salary,omitempty"`
	Location   string `form:"location" json:"location,omitempty"`
	OrderBy    string `form:"order_by" json:"order_by"`
}

// normalize clears enum values the filter engine does not recognize, so the
// echoed filter reflects what was actually applied.
func (f *JobFilter) normalize() {
	if f.Category != "" && !models.JobCategory(f.Category).Valid() {
		f.Category = ""
	}
	if f.SalaryType != "" && !models.SalaryType(f.SalaryType).Valid() {
		f.SalaryType = ""
	}
}

// orderClauses maps the public order_by values onto SQL. Anything else falls
// back to newest. Ties have no guaranteed secondary order.
var orderClauses = map[string]string{
	"newest":         "created_at DESC",
	"oldest":         "created_at ASC",
	"salary_high":    "salary DESC",
	"salary_low":     "salary ASC",
	"positions_high": "positions DESC",
	"positions_low":  "positions ASC",
}

// OrderClause resolves the filter's order_by to a SQL ORDER BY expression,
// normalizing the filter to the value actually applied.
func (f *JobFilter) OrderClause() string {
	if clause, ok := orderClauses[f.OrderBy]; ok {
		return clause
	}
	f.OrderBy = "newest"
	return orderClauses["newest"]
}

// parseSalaryBound returns the bound as a number, or nil when the value is
// empty or not numeric.
func parseSalaryBound(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	// Delete removes the job and its applications in one transaction,
	// children first.
	Delete(db *gorm.DB, id string) error
	UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error
	ListOpen(db *gorm.DB, filter *JobFilter) ([]models.Job, int64, error)
	ListByPublisher(db *gorm.DB, publisherID string) ([]models.Job, error)
	CountApplications(db *gorm.DB, jobID string) (applied int64, accepted int64, err error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Publisher").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":        job.Title,
		"category":     job.Category,
		"description":  job.Description,
		"requirements": job.Requirements,
		"salary":       job.Salary,
		"salary_type":  job.SalaryType,
		"location":     job.Location,
		"duration":     job.Duration,
		"positions":    job.Positions,
		"contact":      job.Contact,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// ListOpen applies the filter engine over open jobs and returns the page
// along with the total matching count.
func (r *JobRepositoryImpl) ListOpen(db *gorm.DB, filter *JobFilter) ([]models.Job, int64, error) {
	filter.normalize()

	query := db.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ?", search, search, search)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SalaryType != "" {
		query = query.Where("salary_type = ?", filter.SalaryType)
	}
	if min := parseSalaryBound(filter.MinSalary); min != nil {
		query = query.Where("salary >= ?", *min)
	}
	if max := parseSalaryBound(filter.MaxSalary); max != nil {
		query = query.Where("salary <= ?", *max)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("Publisher").Order(filter.OrderClause()).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) ListByPublisher(db *gorm.DB, publisherID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("publisher_id = ?", publisherID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountApplications(db *gorm.DB, jobID string) (int64, int64, error) {
	var applied, accepted int64

	if err := db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&applied).Error; err != nil {
		return 0, 0, err
	}
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND status = ?", jobID, models.ApplicationStatusAccepted).
		Count(&accepted).Error

	return applied, accepted, err
}
