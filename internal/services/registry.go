package services

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	AuthService        *AuthService
	UserService        *UserService
	JobService         *JobService
	ApplicationService *ApplicationService
	EmailService       *EmailService
}
