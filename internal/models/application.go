package models

import "gorm.io/datatypes"

// Application is a job application owned by a single verified user.
type Application struct {
	BaseModel
	OwnerID         string            `gorm:"type:varchar(128);not null;index" json:"ownerId"`
	Company         string            `gorm:"type:varchar(100);not null" json:"company"`
	Position        string            `gorm:"type:varchar(200);not null" json:"position"`
	Status          ApplicationStatus `gorm:"type:varchar(32);not null;index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes"`
	ReminderDate    *datatypes.Date   `json:"reminderDate"`
	ReminderMessage string            `gorm:"type:varchar(500)" json:"reminderMessage"`
}
