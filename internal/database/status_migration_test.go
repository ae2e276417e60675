package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrateLegacyStatuses(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT DISTINCT .*status.* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).
			AddRow("Applied").
			AddRow("interview").
			AddRow("Offer Sent").
			AddRow("ghosted"))

	updateSQL := regexp.QuoteMeta(`UPDATE "applications" SET "status"=$1 WHERE status = $2`)
	mock.ExpectExec(updateSQL).
		WithArgs("waiting_for_response", "Applied").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(updateSQL).
		WithArgs("offer_received", "Offer Sent").
		WillReturnResult(sqlmock.NewResult(0, 2))

	migrated, err := MigrateLegacyStatuses(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), migrated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
