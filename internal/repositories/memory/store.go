// Package memory provides in-process implementations of the repository
// interfaces. It backs the "memory" database driver and the service tests.
package memory

import (
	"fmt"
	"time"

	"jobtracker_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// stamp fills the store-assigned fields the way the GORM hooks do.
func stamp(base *models.BaseModel, now time.Time) {
	base.ID = uuid.NewString()
	base.CreatedAt = now
	base.UpdatedAt = now
}

func applyApplicationUpdates(app *models.Application, updates map[string]interface{}) error {
	for column, value := range updates {
		switch column {
		case "company":
			app.Company = value.(string)
		case "position":
			app.Position = value.(string)
		case "status":
			switch v := value.(type) {
			case models.ApplicationStatus:
				app.Status = v
			case string:
				app.Status = models.ApplicationStatus(v)
			}
		case "notes":
			app.Notes = value.(string)
		case "reminder_date":
			d, err := datePointer(value)
			if err != nil {
				return err
			}
			app.ReminderDate = d
		case "reminder_message":
			app.ReminderMessage = value.(string)
		case "updated_at":
			app.UpdatedAt = value.(time.Time)
		default:
			return fmt.Errorf("unknown column %q", column)
		}
	}
	return nil
}

func applyReminderUpdates(reminder *models.Reminder, updates map[string]interface{}) error {
	for column, value := range updates {
		switch column {
		case "title":
			reminder.Title = value.(string)
		case "due_date":
			d, err := datePointer(value)
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("due_date cannot be null")
			}
			reminder.DueDate = *d
		case "notes":
			reminder.Notes = value.(string)
		case "completed":
			reminder.Completed = value.(bool)
		case "updated_at":
			reminder.UpdatedAt = value.(time.Time)
		default:
			return fmt.Errorf("unknown column %q", column)
		}
	}
	return nil
}

func datePointer(value interface{}) (*datatypes.Date, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *datatypes.Date:
		if v == nil {
			return nil, nil
		}
		d := *v
		return &d, nil
	case datatypes.Date:
		return &v, nil
	case time.Time:
		d := datatypes.Date(v)
		return &d, nil
	default:
		return nil, fmt.Errorf("unsupported date value %T", value)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
