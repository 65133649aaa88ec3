package services

import (
	"parttime_backend/internal/email"
	"parttime_backend/internal/logger"
)

// EmailService sends application lifecycle notifications. Delivery is
// best-effort: failures are logged, never surfaced to the request that
// triggered them.
type EmailService struct {
	provider email.Provider
}

func NewEmailService(provider email.Provider) *EmailService {
	return &EmailService{provider: provider}
}

func (s *EmailService) send(to, subject, body string) {
	if to == "" {
		return
	}
	msg := &email.Email{
		To:      []string{to},
		Subject: subject,
		Body:    body,
	}
	if err := s.provider.Send(msg); err != nil {
		logger.Warn("failed to send notification email", "to", to, "subject", subject, "error", err)
	}
}

// NotifyApplicationReceived tells the publisher about a new application.
func (s *EmailService) NotifyApplicationReceived(publisherEmail, jobTitle, applicantName string) {
	subject, body := email.NewApplicationReceived(jobTitle, applicantName)
	s.send(publisherEmail, subject, body)
}

// NotifyApplicationAccepted tells the applicant their application was accepted.
func (s *EmailService) NotifyApplicationAccepted(applicantEmail, jobTitle string) {
	subject, body := email.NewApplicationAccepted(jobTitle)
	s.send(applicantEmail, subject, body)
}

// NotifyApplicationRejected tells the applicant their application was rejected.
func (s *EmailService) NotifyApplicationRejected(applicantEmail, jobTitle string) {
	subject, body := email.NewApplicationRejected(jobTitle)
	s.send(applicantEmail, subject, body)
}
