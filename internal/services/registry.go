package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	SubmissionService SubmissionService
	AuthService       AuthService
	EmailService      EmailService
	TrialService      TrialService
}
