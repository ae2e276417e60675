package handlers

import (
	"net/http"
	"time"

	"jobtracker_backend/internal/reports"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	now                func() time.Time
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		now:                time.Now,
	}
}

// RegisterRoutes mounts the application routes on a group that already
// carries the auth middleware.
func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	{
		apps.POST("", h.CreateApplication)
		apps.GET("", h.ListApplications)
		apps.GET("/summary", h.GetSummary)
		apps.GET("/export", h.ExportCSV)
		apps.GET("/due", h.ListDue)
		apps.PUT("/:id", h.UpdateApplication)
		apps.DELETE("/:id", h.DeleteApplication)
	}
}

// CreateApplication godoc
// @Summary Create an application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} models.Application
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.CreateApplication(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListApplications godoc
// @Summary List the caller's applications
// @Description Oldest first. search filters by company, ignoring case.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param search query string false "Company substring"
// @Success 200 {array} models.Application
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	apps, err := h.applicationService.ListApplications(c.Request.Context(), userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// UpdateApplication godoc
// @Summary Partially update an application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param application body dto.UpdateApplicationRequest true "Fields to change"
// @Success 200 {object} models.Application
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateApplication(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.DeleteApplication(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application deleted successfully."})
}

// GetSummary godoc
// @Summary Dashboard figures for the caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} reports.Summary
// @Router /applications/summary [get]
func (h *ApplicationHandler) GetSummary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summary, err := h.applicationService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportCSV godoc
// @Summary Download the application report as CSV
// @Description Values are not quoted; commas inside a value shift the columns.
// @Tags applications
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV report"
// @Router /applications/export [get]
func (h *ApplicationHandler) ExportCSV(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	report, err := h.applicationService.ExportCSV(c.Request.Context(), userID, h.now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+reports.ReportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(report))
}

// ListDue godoc
// @Summary Applications whose reminder falls on a day
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today (UTC)"
// @Success 200 {array} dto.DueApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /applications/due [get]
func (h *ApplicationHandler) ListDue(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.DueQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	day := h.now().UTC()
	if query.Date != "" {
		day, _ = validator.ParseDate(query.Date)
	}

	apps, err := h.applicationService.ListDueOn(c.Request.Context(), userID, day)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := make([]dto.DueApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, dto.DueApplicationResponse{
			Application:  app,
			Notification: reports.NotificationText(app),
		})
	}
	c.JSON(http.StatusOK, resp)
}
