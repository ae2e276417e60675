package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"
)

type ReminderService interface {
	CreateReminder(ctx context.Context, ownerID string, req *dto.CreateReminderRequest) (*models.Reminder, error)
	// ListReminders returns the owner's reminders by ascending due date.
	ListReminders(ctx context.Context, ownerID string) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, ownerID, id string, req *dto.UpdateReminderRequest) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, ownerID, id string) error
}

type reminderService struct {
	repo      repositories.ReminderRepository
	validator *validator.Validator
	now       func() time.Time
}

func NewReminderService(repo repositories.ReminderRepository, v *validator.Validator) ReminderService {
	return &reminderService{
		repo:      repo,
		validator: v,
		now:       nowUTC,
	}
}

func (s *reminderService) CreateReminder(ctx context.Context, ownerID string, req *dto.CreateReminderRequest) (*models.Reminder, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	req.Normalize()
	var verrs validationErrors
	if err := verrs.merge(s.validator.Validate(req)); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := verrs.err(); err != nil {
		return nil, err
	}

	dueDate, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		_ = verrs.merge(err)
		return nil, verrs.err()
	}

	reminder := &models.Reminder{
		OwnerID:   ownerID,
		Title:     req.Title,
		DueDate:   dueDate,
		Notes:     req.Notes,
		Completed: req.Completed,
	}

	if err := s.repo.CreateReminder(ctx, reminder); err != nil {
		return nil, storeError(ctx, "create reminder", err)
	}

	logger.CtxInfo(ctx, "reminder created", "reminder_id", reminder.ID)
	return reminder, nil
}

func (s *reminderService) ListReminders(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	reminders, err := s.repo.FindReminders(ctx, ownerID)
	if err != nil {
		return nil, storeError(ctx, "list reminders", err)
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return time.Time(reminders[i].DueDate).Before(time.Time(reminders[j].DueDate))
	})
	return reminders, nil
}

func (s *reminderService) UpdateReminder(ctx context.Context, ownerID, id string, req *dto.UpdateReminderRequest) (*models.Reminder, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !validRecordID(id) {
		return nil, apperrors.ErrReminderNotFound
	}

	req.Normalize()
	var verrs validationErrors
	if err := verrs.merge(s.validator.Validate(req)); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := verrs.err(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.DueDate != nil {
		d, err := parseDate("dueDate", *req.DueDate)
		if err != nil {
			_ = verrs.merge(err)
			return nil, verrs.err()
		}
		updates["due_date"] = d
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}
	updates["updated_at"] = s.now()

	reminder, err := s.repo.UpdateReminder(ctx, ownerID, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrReminderNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, storeError(ctx, "update reminder", err)
	}

	logger.CtxInfo(ctx, "reminder updated", "reminder_id", id)
	return reminder, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, ownerID, id string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if !validRecordID(id) {
		return apperrors.ErrReminderNotFound
	}

	if err := s.repo.DeleteReminder(ctx, ownerID, id); err != nil {
		if errors.Is(err, repositories.ErrReminderNotFound) {
			return apperrors.ErrReminderNotFound
		}
		return storeError(ctx, "delete reminder", err)
	}

	logger.CtxInfo(ctx, "reminder deleted", "reminder_id", id)
	return nil
}
