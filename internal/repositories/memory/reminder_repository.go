package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
)

type ReminderRepository struct {
	mu        sync.RWMutex
	reminders []models.Reminder
	now       func() time.Time
}

func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{now: time.Now}
}

var _ repositories.ReminderRepository = (*ReminderRepository)(nil)

func (r *ReminderRepository) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stamp(&reminder.BaseModel, r.now().UTC())
	r.reminders = append(r.reminders, *reminder)
	return nil
}

func (r *ReminderRepository) FindReminders(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Reminder{}
	for _, reminder := range r.reminders {
		if reminder.OwnerID == ownerID {
			result = append(result, reminder)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return time.Time(result[i].DueDate).Before(time.Time(result[j].DueDate))
	})
	return result, nil
}

func (r *ReminderRepository) UpdateReminder(ctx context.Context, ownerID, id string, updates map[string]interface{}) (*models.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return nil, repositories.ErrReminderNotFound
	}

	updated := r.reminders[i]
	if err := applyReminderUpdates(&updated, updates); err != nil {
		return nil, err
	}
	r.reminders[i] = updated
	return &updated, nil
}

func (r *ReminderRepository) DeleteReminder(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return repositories.ErrReminderNotFound
	}
	r.reminders = append(r.reminders[:i], r.reminders[i+1:]...)
	return nil
}

func (r *ReminderRepository) indexOf(ownerID, id string) int {
	for i, reminder := range r.reminders {
		if reminder.ID == id && reminder.OwnerID == ownerID {
			return i
		}
	}
	return -1
}
