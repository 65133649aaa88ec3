package models

type Job struct {
	BaseModel
	PublisherID  string      `gorm:"type:uuid;not null;index" json:"publisher_id"`
	Title        string      `gorm:"type:varchar(200);not null" json:"title"`
	Category     JobCategory `gorm:"type:varchar(20);not null" json:"category"`
	Description  string      `gorm:"type:text;not null" json:"description"`
	Requirements string      `gorm:"type:text" json:"requirements,omitempty"`
	Salary       float64     `gorm:"type:numeric(10,2);not null" json:"salary"`
	SalaryType   SalaryType  `gorm:"type:varchar(10);not null;default:'hourly'" json:"salary_type"`
	Location     string      `gorm:"type:varchar(200);not null" json:"location"`
	Duration     string      `gorm:"type:varchar(100)" json:"duration"`
	Positions    int         `gorm:"not null;default:1" json:"positions"`
	Contact      string      `gorm:"type:varchar(100);not null" json:"contact"`
	Status       JobStatus   `gorm:"type:varchar(10);not null;default:'open'" json:"status"`

	Publisher    *User         `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsOpen reports whether the job still accepts applications.
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}
