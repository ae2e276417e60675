package handlers

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	ApplicationHandler *ApplicationHandler
	ReminderHandler    *ReminderHandler
	HealthHandler      *HealthHandler
}
