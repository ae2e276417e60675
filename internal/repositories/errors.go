package repositories

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrReminderNotFound    = errors.New("reminder not found")
)
