package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
)

// ApplicationRepository keeps applications in insertion order, which is also
// created_at order.
type ApplicationRepository struct {
	mu   sync.RWMutex
	apps []models.Application
	now  func() time.Time
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{now: time.Now}
}

var _ repositories.ApplicationRepository = (*ApplicationRepository)(nil)

func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stamp(&app.BaseModel, r.now().UTC())
	r.apps = append(r.apps, *app)
	return nil
}

func (r *ApplicationRepository) FindApplications(ctx context.Context, filter repositories.ApplicationFilter) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(filter.CompanyContains))
	result := []models.Application{}
	for _, app := range r.apps {
		if app.OwnerID != filter.OwnerID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(app.Company), term) {
			continue
		}
		if filter.ReminderOn != nil {
			if app.ReminderDate == nil || !sameDay(time.Time(*app.ReminderDate), *filter.ReminderOn) {
				continue
			}
		}
		result = append(result, app)
	}
	return result, nil
}

func (r *ApplicationRepository) UpdateApplication(ctx context.Context, ownerID, id string, updates map[string]interface{}) (*models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return nil, repositories.ErrApplicationNotFound
	}

	updated := r.apps[i]
	if err := applyApplicationUpdates(&updated, updates); err != nil {
		return nil, err
	}
	r.apps[i] = updated
	return &updated, nil
}

func (r *ApplicationRepository) DeleteApplication(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return repositories.ErrApplicationNotFound
	}
	r.apps = append(r.apps[:i], r.apps[i+1:]...)
	return nil
}

func (r *ApplicationRepository) indexOf(ownerID, id string) int {
	for i, app := range r.apps {
		if app.ID == id && app.OwnerID == ownerID {
			return i
		}
	}
	return -1
}
