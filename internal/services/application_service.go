package services

import (
	"context"
	"errors"
	"time"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/reports"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, ownerID string, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListApplications(ctx context.Context, ownerID string, query dto.ApplicationListQuery) ([]models.Application, error)
	UpdateApplication(ctx context.Context, ownerID, id string, req *dto.UpdateApplicationRequest) (*models.Application, error)
	DeleteApplication(ctx context.Context, ownerID, id string) error

	// Dashboard
	GetSummary(ctx context.Context, ownerID string) (*reports.Summary, error)
	ExportCSV(ctx context.Context, ownerID string, generatedAt time.Time) (string, error)
	ListDueOn(ctx context.Context, ownerID string, day time.Time) ([]models.Application, error)
}

type applicationService struct {
	repo      repositories.ApplicationRepository
	validator *validator.Validator
	now       func() time.Time
}

func NewApplicationService(repo repositories.ApplicationRepository, v *validator.Validator) ApplicationService {
	return &applicationService{
		repo:      repo,
		validator: v,
		now:       nowUTC,
	}
}

// ---------------- CRUD ----------------

func (s *applicationService) CreateApplication(ctx context.Context, ownerID string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	req.Normalize()
	var verrs validationErrors
	if err := verrs.merge(s.validator.Validate(req)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	var reminderDate *datatypes.Date
	if req.ReminderDate != nil && *req.ReminderDate != "" {
		if d, err := parseDate("reminderDate", *req.ReminderDate); err != nil {
			_ = verrs.merge(err)
		} else {
			reminderDate = &d
		}
	}
	if err := verrs.err(); err != nil {
		return nil, err
	}

	status := models.DefaultApplicationStatus
	if req.Status != "" {
		status, _ = models.NormalizeStatus(req.Status)
	}

	app := &models.Application{
		OwnerID:         ownerID,
		Company:         req.Company,
		Position:        req.Position,
		Status:          status,
		Notes:           req.Notes,
		ReminderDate:    reminderDate,
		ReminderMessage: req.ReminderMessage,
	}

	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return nil, storeError(ctx, "create application", err)
	}

	logger.CtxInfo(ctx, "application created", "application_id", app.ID)
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context, ownerID string, query dto.ApplicationListQuery) ([]models.Application, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	apps, err := s.repo.FindApplications(ctx, repositories.ApplicationFilter{
		OwnerID:         ownerID,
		CompanyContains: query.Search,
	})
	if err != nil {
		return nil, storeError(ctx, "list applications", err)
	}
	// Stores match with their own pattern rules; this keeps search a plain
	// substring match for every backend.
	return reports.FilterByCompany(apps, query.Search), nil
}

func (s *applicationService) UpdateApplication(ctx context.Context, ownerID, id string, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !validRecordID(id) {
		return nil, apperrors.ErrApplicationNotFound
	}

	req.Normalize()
	var verrs validationErrors
	if err := verrs.merge(s.validator.Validate(req)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updates := map[string]interface{}{}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Status != nil {
		if status, ok := models.NormalizeStatus(*req.Status); ok {
			updates["status"] = status
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ReminderMessage != nil {
		updates["reminder_message"] = *req.ReminderMessage
	}
	switch {
	case req.ReminderDate.Cleared():
		updates["reminder_date"] = nil
	case req.ReminderDate.Set:
		if d, err := parseDate("reminderDate", *req.ReminderDate.Value); err != nil {
			_ = verrs.merge(err)
		} else {
			updates["reminder_date"] = &d
		}
	}
	if err := verrs.err(); err != nil {
		return nil, err
	}
	updates["updated_at"] = s.now()

	app, err := s.repo.UpdateApplication(ctx, ownerID, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, storeError(ctx, "update application", err)
	}

	logger.CtxInfo(ctx, "application updated", "application_id", id)
	return app, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, ownerID, id string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if !validRecordID(id) {
		return apperrors.ErrApplicationNotFound
	}

	if err := s.repo.DeleteApplication(ctx, ownerID, id); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return storeError(ctx, "delete application", err)
	}

	logger.CtxInfo(ctx, "application deleted", "application_id", id)
	return nil
}

// ---------------- Dashboard ----------------

func (s *applicationService) GetSummary(ctx context.Context, ownerID string) (*reports.Summary, error) {
	apps, err := s.ListApplications(ctx, ownerID, dto.ApplicationListQuery{})
	if err != nil {
		return nil, err
	}
	return reports.BuildSummary(apps), nil
}

func (s *applicationService) ExportCSV(ctx context.Context, ownerID string, generatedAt time.Time) (string, error) {
	apps, err := s.ListApplications(ctx, ownerID, dto.ApplicationListQuery{})
	if err != nil {
		return "", err
	}
	return reports.CSV(apps, generatedAt), nil
}

func (s *applicationService) ListDueOn(ctx context.Context, ownerID string, day time.Time) ([]models.Application, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	y, m, d := day.Date()
	day = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	apps, err := s.repo.FindApplications(ctx, repositories.ApplicationFilter{
		OwnerID:    ownerID,
		ReminderOn: &day,
	})
	if err != nil {
		return nil, storeError(ctx, "list due applications", err)
	}
	// The SQL filter compares whole dates; keep the guarantee for any store.
	return reports.DueOn(apps, day), nil
}
