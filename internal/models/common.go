package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the store-assigned fields shared by every record.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id. Any id set by the caller is replaced.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	m.ID = uuid.NewString()
	return nil
}
