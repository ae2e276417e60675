package dto

import (
	"strings"

	"jobtracker_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

// CreateApplicationRequest is the body of POST /applications. Owner fields
// are never read from the body.
type CreateApplicationRequest struct {
	Company         string  `json:"company" validate:"required,trimmed-min=2,max=100" example:"Acme"`
	Position        string  `json:"position" validate:"required,max=200" example:"Backend Engineer"`
	Status          string  `json:"status" validate:"omitempty,is-application-status" example:"waiting_for_response"`
	Notes           string  `json:"notes" validate:"omitempty,max=1000"`
	ReminderDate    *string `json:"reminderDate" validate:"omitempty,is-date" example:"2025-03-01"`
	ReminderMessage string  `json:"reminderMessage" validate:"omitempty,max=500"`
}

func (r *CreateApplicationRequest) Normalize() {
	r.Company = strings.TrimSpace(r.Company)
	r.Position = strings.TrimSpace(r.Position)
	r.Status = strings.TrimSpace(r.Status)
	trimPtr(r.ReminderDate)
}

// UpdateApplicationRequest is a partial update. Nil fields are left alone;
// reminderDate may be null to clear it.
type UpdateApplicationRequest struct {
	Company         *string        `json:"company" validate:"omitnil,trimmed-min=2,max=100"`
	Position        *string        `json:"position" validate:"omitnil,trimmed-min=1,max=200"`
	Status          *string        `json:"status" validate:"omitnil,trimmed-min=1,is-application-status"`
	Notes           *string        `json:"notes" validate:"omitnil,max=1000"`
	ReminderDate    OptionalString `json:"reminderDate" validate:"-" swaggertype:"string"`
	ReminderMessage *string        `json:"reminderMessage" validate:"omitnil,max=500"`
}

func (r *UpdateApplicationRequest) Normalize() {
	trimPtr(r.Company)
	trimPtr(r.Position)
	trimPtr(r.Status)
	trimPtr(r.ReminderDate.Value)
}

// ApplicationListQuery holds the optional list filters.
type ApplicationListQuery struct {
	Search string `form:"search" validate:"omitempty,max=100"`
}

// DueQuery selects the reminder day; empty means today.
type DueQuery struct {
	Date string `form:"date" validate:"omitempty,is-date"`
}

// ======================
// Response DTOs
// ======================

// DueApplicationResponse is an application whose reminder is due, with the
// line the client shows for it.
type DueApplicationResponse struct {
	models.Application
	Notification string `json:"notification" example:"Reminder for Acme — Backend Engineer"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
