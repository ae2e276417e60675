package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationFilter narrows FindApplications. OwnerID is mandatory.
type ApplicationFilter struct {
	OwnerID string
	// Case-insensitive substring of the company name.
	CompanyContains string
	// Only records whose reminder falls on this calendar day.
	ReminderOn *time.Time
}

// ApplicationRepository is the owner-scoped store for applications. Every
// mutation filters on (id, owner_id) in a single statement; a record owned by
// someone else behaves exactly like a missing one.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	FindApplications(ctx context.Context, filter ApplicationFilter) ([]models.Application, error)
	UpdateApplication(ctx context.Context, ownerID, id string, updates map[string]interface{}) (*models.Application, error)
	DeleteApplication(ctx context.Context, ownerID, id string) error
}

// likeEscaper makes %, _ and the escape character match literally under the
// default LIKE escape of postgres and mysql.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) CreateApplication(ctx context.Context, app *models.Application) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(app).Error
	logger.DBLog("create", "applications", time.Since(start), err)
	return err
}

func (r *ApplicationRepositoryImpl) FindApplications(ctx context.Context, filter ApplicationFilter) ([]models.Application, error) {
	start := time.Now()

	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID)
	if term := strings.TrimSpace(filter.CompanyContains); term != "" {
		query = query.Where("LOWER(company) LIKE ?", "%"+likeEscaper.Replace(strings.ToLower(term))+"%")
	}
	if filter.ReminderOn != nil {
		query = query.Where("reminder_date = ?", datatypes.Date(*filter.ReminderOn))
	}

	apps := []models.Application{}
	err := query.Order("created_at ASC").Find(&apps).Error
	logger.DBLog("find", "applications", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplication applies updates to the record matching (id, ownerID) and
// reads it back within the same transaction.
func (r *ApplicationRepositoryImpl) UpdateApplication(ctx context.Context, ownerID, id string, updates map[string]interface{}) (*models.Application, error) {
	start := time.Now()

	var app models.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&app).Error
	})
	logger.DBLog("update", "applications", time.Since(start), err)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) DeleteApplication(ctx context.Context, ownerID, id string) error {
	start := time.Now()
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Application{})
	logger.DBLog("delete", "applications", time.Since(start), result.Error)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
