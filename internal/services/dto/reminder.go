package dto

import "strings"

type CreateReminderRequest struct {
	Title     string `json:"title" validate:"required,max=200" example:"Follow up with Acme"`
	DueDate   string `json:"dueDate" validate:"required,is-date" example:"2025-03-01"`
	Notes     string `json:"notes" validate:"omitempty,max=1000"`
	Completed bool   `json:"completed"`
}

func (r *CreateReminderRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.DueDate = strings.TrimSpace(r.DueDate)
}

type UpdateReminderRequest struct {
	Title     *string `json:"title" validate:"omitnil,trimmed-min=1,max=200"`
	DueDate   *string `json:"dueDate" validate:"omitnil,trimmed-min=1,is-date"`
	Notes     *string `json:"notes" validate:"omitnil,max=1000"`
	Completed *bool   `json:"completed"`
}

func (r *UpdateReminderRequest) Normalize() {
	trimPtr(r.Title)
	trimPtr(r.DueDate)
}
