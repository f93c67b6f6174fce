package migrations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/app/migrations"
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/db/dbtest"
	"gorm.io/gorm"
)

func TestMigrateCreatesSchemaOnce(t *testing.T) {
	gormDB := dbtest.New(t)
	ctx := context.Background()

	for _, table := range []string{"students", "courses", "semesters", "lecturers", "student_courses", "course_semesters"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}

	m := migrations.NewMigrator(gormDB)
	require.NoError(t, m.Migrate(ctx))

	applied, err := m.Applied(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"001"}, applied)
}

func TestMigrateStopsOnFailure(t *testing.T) {
	gormDB := dbtest.New(t)
	ctx := context.Background()
	boom := errors.New("boom")

	m := migrations.NewMigrator(gormDB,
		migrations.Migration{Version: "003", Name: "broken", Apply: func(tx *gorm.DB) error { return boom }},
		migrations.Migration{Version: "002", Name: "lecturer_surname_index", Apply: func(tx *gorm.DB) error {
			return tx.Exec("CREATE INDEX IF NOT EXISTS idx_lecturers_surname ON lecturers (surname)").Error
		}},
	)

	err := m.Migrate(ctx)
	assert.ErrorIs(t, err, boom)

	applied, err := m.Applied(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"001", "002"}, applied)
	assert.True(t, gormDB.Migrator().HasIndex(&models.Lecturer{}, "idx_lecturers_surname"))
}
