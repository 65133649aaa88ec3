package models

type UserRole string
type JobStatus string
type JobCategory string
type SalaryType string
type ApplicationStatus string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleEmployer UserRole = "employer"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	JobCategoryTutoring  JobCategory = "tutoring"
	JobCategoryService   JobCategory = "service"
	JobCategoryPromotion JobCategory = "promotion"
	JobCategoryEvent     JobCategory = "event"
	JobCategoryTech      JobCategory = "tech"
	JobCategoryOther     JobCategory = "other"

	SalaryTypeHourly SalaryType = "hourly"
	SalaryTypeDaily  SalaryType = "daily"
	SalaryTypeTotal  SalaryType = "total"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

// JobCategories lists the valid job categories in display order.
var JobCategories = []JobCategory{
	JobCategoryTutoring,
	JobCategoryService,
	JobCategoryPromotion,
	JobCategoryEvent,
	JobCategoryTech,
	JobCategoryOther,
}

func (c JobCategory) Valid() bool {
	switch c {
	case JobCategoryTutoring, JobCategoryService, JobCategoryPromotion,
		JobCategoryEvent, JobCategoryTech, JobCategoryOther:
		return true
	}
	return false
}

func (t SalaryType) Valid() bool {
	switch t {
	case SalaryTypeHourly, SalaryTypeDaily, SalaryTypeTotal:
		return true
	}
	return false
}

func (r UserRole) Valid() bool {
	return r == UserRoleStudent || r == UserRoleEmployer
}
