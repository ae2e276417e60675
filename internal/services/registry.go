package services

// ServiceContainer holds the application services.
type ServiceContainer struct {
	ApplicationService ApplicationService
	ReminderService    ReminderService
}
