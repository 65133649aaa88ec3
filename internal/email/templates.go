package email

import "fmt"

// Message builders for application lifecycle notifications. Kept as plain
// text; the web client owns presentation.

func NewApplicationReceived(jobTitle, applicantName string) (subject, body string) {
	subject = fmt.Sprintf("New application for \"%s\"", jobTitle)
	body = fmt.Sprintf(
		"%s has applied to your job \"%s\".\n\nLog in to review the application.",
		applicantName, jobTitle,
	)
	return subject, body
}

func NewApplicationAccepted(jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("Your application for \"%s\" was accepted", jobTitle)
	body = fmt.Sprintf(
		"Good news! The publisher accepted your application for \"%s\".\n\nGet in touch using the contact details on the job page.",
		jobTitle,
	)
	return subject, body
}

func NewApplicationRejected(jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("Update on your application for \"%s\"", jobTitle)
	body = fmt.Sprintf(
		"The publisher has decided not to move forward with your application for \"%s\".",
		jobTitle,
	)
	return subject, body
}
