package apperrors

import "net/http"

// Factories for errors that wrap a storage-layer cause.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrDuplicateApplication covers both the pre-check and the unique-index
// violation on (job_id, applicant_id).
func ErrDuplicateApplication(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "application", "You have already applied to this job", http.StatusConflict)
}

// ErrInvalidStatus is the generic state-machine violation: the transition
// requested is not allowed from the record's current status.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// Static errors for frequent, fixed conditions.

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already in use",
	http.StatusConflict,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrNotJobPublisher rejects edit/close/delete/manage attempts by anyone who
// is not the job's publisher.
var ErrNotJobPublisher = New(
	CodeForbidden,
	"job",
	"Only the publisher may perform this operation",
	http.StatusForbidden,
)

// ErrNotApplicationParty rejects application operations by a user who is
// neither the applicant nor the job's publisher.
var ErrNotApplicationParty = New(
	CodeForbidden,
	"application",
	"You are not allowed to act on this application",
	http.StatusForbidden,
)

// ErrSelfApplication rejects applications to the caller's own job.
var ErrSelfApplication = New(
	CodeInvalidOperation,
	"application",
	"You cannot apply to your own job",
	http.StatusConflict,
)

// ErrJobNotOpen rejects applications to a job that is no longer recruiting.
var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"This job is not open for applications",
	http.StatusConflict,
)
