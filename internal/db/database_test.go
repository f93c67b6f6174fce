package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/config"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/db/dbtest"
	"gorm.io/gorm"
)

func TestOpenMemoryFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Provider = config.ProviderMemory
	cfg.Database.MemoryDSN = dbtest.DSN(t)

	database, err := db.Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderMemory, database.Provider)
	require.NoError(t, database.Ping(context.Background()))

	require.NoError(t, database.Close())
	assert.Error(t, database.Ping(context.Background()))
}

func TestOpenRejectsUnknownProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Provider = "oracle"

	_, err := db.Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown database provider")
}

func TestWithTransactionRollsBack(t *testing.T) {
	gormDB := dbtest.New(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.WithTransaction(ctx, gormDB, func(ctx context.Context, tx *gorm.DB) error {
		require.NoError(t, tx.Create(&models.Lecturer{Surname: "Schmidt", Name: "Hans"}).Error)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, gormDB.Model(&models.Lecturer{}).Count(&count).Error)
	assert.Zero(t, count)

	err = db.WithTransaction(ctx, gormDB, func(ctx context.Context, tx *gorm.DB) error {
		return tx.Create(&models.Lecturer{Surname: "Schmidt", Name: "Hans"}).Error
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.Model(&models.Lecturer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
