package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/yigit/hochschule/internal/config"
	"github.com/yigit/hochschule/internal/pkg/helpers"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database wraps the gorm handle together with the resources behind it
type Database struct {
	DB       *gorm.DB
	Provider string

	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Open connects to the store selected by cfg.Database.Provider
func Open(ctx context.Context, cfg *config.Config) (*Database, error) {
	switch cfg.Database.Provider {
	case config.ProviderPostgres:
		return OpenPostgres(ctx, cfg)
	case config.ProviderMemory:
		return OpenMemory(cfg.Database.MemoryDSN, gormConfig(cfg))
	default:
		return nil, fmt.Errorf("unknown database provider %q", cfg.Database.Provider)
	}
}

func gormConfig(cfg *config.Config) *gorm.Config {
	threshold := helpers.ParseDuration(cfg.Database.SlowQueryThreshold, 200*time.Millisecond)
	return &gorm.Config{
		Logger:         logger.NewGormLogger(threshold),
		TranslateError: true,
	}
}

// OpenPostgres creates a pgx connection pool and hands it to gorm
func OpenPostgres(ctx context.Context, cfg *config.Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	// Add health check for connections
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(cfg))
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to open gorm on postgres: %w", err)
	}

	return &Database{DB: gormDB, Provider: config.ProviderPostgres, pool: pool, sqlDB: sqlDB}, nil
}

// OpenMemory opens an in-memory SQLite store. The DSN must use shared cache
// so every session sees the same database.
func OpenMemory(dsn string, gormCfg *gorm.Config) (*Database, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{TranslateError: true}
	}

	gormDB, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access in-memory connection: %w", err)
	}
	// One connection keeps the memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gormDB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Database{DB: gormDB, Provider: config.ProviderMemory, sqlDB: sqlDB}, nil
}

// Ping checks that the store is reachable
func (d *Database) Ping(ctx context.Context) error {
	if d.sqlDB == nil {
		return fmt.Errorf("database is closed")
	}
	return d.sqlDB.PingContext(ctx)
}

// Close releases the connection and the pool behind it
func (d *Database) Close() error {
	var err error
	if d.sqlDB != nil {
		err = d.sqlDB.Close()
		d.sqlDB = nil
	}
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
	return err
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *gorm.DB) error

// WithTransaction runs a function within a transaction
func WithTransaction(ctx context.Context, db *gorm.DB, fn TransactionFn) error {
	// Add timeout to context if not already present
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
	if err != nil {
		logger.Debug().Err(err).Msg("Transaction rolled back")
	}
	return err
}
