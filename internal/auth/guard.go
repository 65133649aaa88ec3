package auth

import "parttime_backend/internal/models"

// Ownership and party predicates. Every mutating job/application operation
// consults one of these before touching state; a false result must leave the
// record unchanged.

// Decision is the outcome of a guard predicate.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// IsJobOwner allows only the job's publisher.
func IsJobOwner(userID string, job *models.Job) Decision {
	if job != nil && userID != "" && userID == job.PublisherID {
		return allow()
	}
	return deny("user is not the publisher of this job")
}

// IsApplicant allows only the application's applicant.
func IsApplicant(userID string, app *models.Application) Decision {
	if app != nil && userID != "" && userID == app.ApplicantID {
		return allow()
	}
	return deny("user is not the applicant of this application")
}

// IsJobOwnerOfApplication allows only the publisher of the application's job.
func IsJobOwnerOfApplication(userID string, app *models.Application) Decision {
	if app == nil || app.Job == nil {
		return deny("application has no job loaded")
	}
	return IsJobOwner(userID, app.Job)
}

// CanViewManagement allows the applicant or the publisher of the job.
func CanViewManagement(userID string, app *models.Application) Decision {
	if IsApplicant(userID, app).Allowed || IsJobOwnerOfApplication(userID, app).Allowed {
		return allow()
	}
	return deny("user is neither the applicant nor the job publisher")
}
