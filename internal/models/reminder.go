package models

import "gorm.io/datatypes"

type Reminder struct {
	BaseModel
	OwnerID   string         `gorm:"type:varchar(128);not null;index" json:"ownerId"`
	Title     string         `gorm:"type:varchar(200);not null" json:"title"`
	DueDate   datatypes.Date `gorm:"not null;index" json:"dueDate"`
	Notes     string         `gorm:"type:text" json:"notes"`
	Completed bool           `gorm:"not null" json:"completed"`
}
