package migrations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"gorm.io/gorm"
)

// SchemaMigration records an applied migration
type SchemaMigration struct {
	Version   string    `gorm:"primaryKey;size:255"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName keeps the tracking table name stable
func (SchemaMigration) TableName() string { return "schema_migrations" }

// Migration is a single versioned schema change
type Migration struct {
	Version string
	Name    string
	Apply   func(tx *gorm.DB) error
}

// Default lists the migrations of the application in order
func Default() []Migration {
	return []Migration{
		{
			Version: "001",
			Name:    "initial_schema",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Lecturer{}, &models.Semester{}, &models.Course{}, &models.Student{})
			},
		},
	}
}

// Migrator manages database migrations
type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

// NewMigrator creates a new migrator for the given migrations, Default() when none are passed
func NewMigrator(db *gorm.DB, migrations ...Migration) *Migrator {
	if len(migrations) == 0 {
		migrations = Default()
	}
	sorted := append([]Migration(nil), migrations...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })
	return &Migrator{db: db, migrations: sorted}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&SchemaMigration{}).Where("version = ?", version).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// Applied returns the versions recorded as applied, oldest first
func (m *Migrator) Applied(ctx context.Context) ([]string, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return nil, err
	}
	var versions []string
	err := m.db.WithContext(ctx).Model(&SchemaMigration{}).Order("version").Pluck("version", &versions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applied migrations: %w", err)
	}
	return versions, nil
}

// Migrate applies every pending migration, each in its own transaction
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, migration := range m.migrations {
		label := migration.Version + "_" + migration.Name

		applied, err := m.isMigrationApplied(ctx, migration.Version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("migration", label).Msg("Migration already applied, skipping")
			continue
		}

		err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := migration.Apply(tx); err != nil {
				return fmt.Errorf("error occurred during migration %s: %w", label, err)
			}
			record := SchemaMigration{Version: migration.Version, AppliedAt: time.Now().UTC()}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		logger.Info().Str("migration", label).Msg("Migration successfully applied")
	}

	return nil
}
