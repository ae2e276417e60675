package database

import (
	"context"
	"fmt"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

// MigrateLegacyStatuses rewrites stored application statuses written by older
// clients ("Applied", "Offer Sent", "rejected", ...) to the canonical values.
// Unrecognised values are left untouched and reported.
func MigrateLegacyStatuses(ctx context.Context, db *gorm.DB) (int64, error) {
	var stored []string
	if err := db.WithContext(ctx).
		Model(&models.Application{}).
		Distinct("status").
		Pluck("status", &stored).Error; err != nil {
		return 0, fmt.Errorf("load distinct statuses: %w", err)
	}

	var migrated int64
	for _, old := range stored {
		canonical, ok := models.MigrateLegacyStatus(old)
		if !ok {
			logger.Warn("unknown application status left as is", "status", old)
			continue
		}
		if string(canonical) == old {
			continue
		}

		result := db.WithContext(ctx).
			Model(&models.Application{}).
			Where("status = ?", old).
			UpdateColumn("status", string(canonical))
		if result.Error != nil {
			return migrated, fmt.Errorf("migrate status %q: %w", old, result.Error)
		}
		logger.Info("migrated legacy status", "from", old, "to", canonical, "rows", result.RowsAffected)
		migrated += result.RowsAffected
	}

	return migrated, nil
}
