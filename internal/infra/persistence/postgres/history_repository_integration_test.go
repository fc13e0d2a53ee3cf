package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"snaptext/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and
// migrates the schema. Tests that need a live database skip without it.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AccountModel{}, &model.HistoryRecordModel{}))

	return db
}

func createIntegrationAccount(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	account := &model.AccountModel{
		ID:            uuid.New(),
		Username:      "retention-" + uuid.NewString(),
		PasswordHash:  "irrelevant",
		Role:          "standard",
		ApprovalState: "approved",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, db.Create(account).Error)

	t.Cleanup(func() {
		db.Where("id = ?", account.ID).Delete(&model.AccountModel{})
	})

	return account.ID
}

func insertRecordAged(t *testing.T, db *gorm.DB, accountID uuid.UUID, age time.Duration) uuid.UUID {
	t.Helper()

	record := &model.HistoryRecordModel{
		ID:         uuid.New(),
		AccountID:  accountID,
		PayloadRef: "captures/" + uuid.NewString() + ".jpg",
		ResultText: "text",
		CreatedAt:  time.Now().Add(-age),
	}
	require.NoError(t, db.Create(record).Error)

	return record.ID
}

func TestHistoryRepository_DeleteOlderThan_AgeBoundaries(t *testing.T) {
	db := openTestDB(t)
	accountID := createIntegrationAccount(t, db)

	keptID := insertRecordAged(t, db, accountID, 23*time.Hour)
	insertRecordAged(t, db, accountID, 24*time.Hour+time.Minute)
	insertRecordAged(t, db, accountID, 48*time.Hour)

	repo := NewHistoryRepository(db)

	removed, err := repo.DeleteOlderThan(context.Background(), accountID, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := repo.ListByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keptID, remaining[0].ID)
}

func TestHistoryRepository_DeleteOlderThan_NothingEligible(t *testing.T) {
	db := openTestDB(t)
	accountID := createIntegrationAccount(t, db)

	insertRecordAged(t, db, accountID, time.Hour)

	repo := NewHistoryRepository(db)

	removed, err := repo.DeleteOlderThan(context.Background(), accountID, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestHistoryRecords_CascadeWithAccountRow(t *testing.T) {
	db := openTestDB(t)
	accountID := createIntegrationAccount(t, db)

	insertRecordAged(t, db, accountID, time.Hour)

	require.NoError(t, db.Where("id = ?", accountID).Delete(&model.AccountModel{}).Error)

	var count int64
	require.NoError(t, db.Model(&model.HistoryRecordModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
