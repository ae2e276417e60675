package handlers

import (
	"net/http"

	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	*BaseHandler
	reminderService services.ReminderService
}

func NewReminderHandler(base *BaseHandler, reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		BaseHandler:     base,
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) RegisterRoutes(r *gin.RouterGroup) {
	reminders := r.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
	}
}

// CreateReminder godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reminder body dto.CreateReminderRequest true "Reminder"
// @Success 201 {object} models.Reminder
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// ListReminders godoc
// @Summary List the caller's reminders, earliest due first
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Reminder
// @Router /reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reminders, err := h.reminderService.ListReminders(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// UpdateReminder godoc
// @Summary Partially update a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param reminder body dto.UpdateReminderRequest true "Fields to change"
// @Success 200 {object} models.Reminder
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	reminder, err := h.reminderService.UpdateReminder(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder godoc
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.reminderService.DeleteReminder(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Reminder deleted"})
}
