// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/app/migrations"
	"github.com/yigit/hochschule/internal/db"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var counter atomic.Int64

// DSN returns a memory DSN unique to the test
func DSN(t testing.TB) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, counter.Add(1))
}

// Open returns a migrated in-memory database closed at the end of the test
func Open(t testing.TB) *db.Database {
	t.Helper()

	database, err := db.OpenMemory(DSN(t), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.NewMigrator(database.DB).Migrate(context.Background()))
	return database
}

// New is Open returning the gorm handle only
func New(t testing.TB) *gorm.DB {
	t.Helper()
	return Open(t).DB
}
