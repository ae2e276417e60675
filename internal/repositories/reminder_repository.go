package repositories

import (
	"context"
	"errors"
	"time"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

// ReminderRepository mirrors ApplicationRepository for reminders.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	// FindReminders returns the owner's reminders by ascending due date.
	FindReminders(ctx context.Context, ownerID string) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, ownerID, id string, updates map[string]interface{}) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, ownerID, id string) error
}

type ReminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &ReminderRepositoryImpl{db: db}
}

func (r *ReminderRepositoryImpl) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(reminder).Error
	logger.DBLog("create", "reminders", time.Since(start), err)
	return err
}

func (r *ReminderRepositoryImpl) FindReminders(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	start := time.Now()

	reminders := []models.Reminder{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("due_date ASC").
		Order("created_at ASC").
		Find(&reminders).Error
	logger.DBLog("find", "reminders", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderRepositoryImpl) UpdateReminder(ctx context.Context, ownerID, id string, updates map[string]interface{}) (*models.Reminder, error) {
	start := time.Now()

	var reminder models.Reminder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Reminder{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReminderNotFound
		}
		return tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&reminder).Error
	})
	logger.DBLog("update", "reminders", time.Since(start), err)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *ReminderRepositoryImpl) DeleteReminder(ctx context.Context, ownerID, id string) error {
	start := time.Now()
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Reminder{})
	logger.DBLog("delete", "reminders", time.Since(start), result.Error)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}
