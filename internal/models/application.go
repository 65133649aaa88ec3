package models

import "time"

type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Message     string            `gorm:"type:text;not null" json:"message"`
	Status      ApplicationStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`

	Job       *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"applicant,omitempty"`
}

// applicationTransitions is the full lifecycle. Statuses missing from the map
// (rejected, withdrawn, completed) are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:  {ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusAccepted: {ApplicationStatusCompleted},
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
// It says nothing about who may trigger the move; actor rules live in the
// authorization guard.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition leaves s.
func (s ApplicationStatus) Terminal() bool {
	return len(applicationTransitions[s]) == 0
}
