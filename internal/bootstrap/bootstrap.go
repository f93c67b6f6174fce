package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/hochschule/internal/app/controllers"
	appMigrations "github.com/yigit/hochschule/internal/app/migrations"
	appRepos "github.com/yigit/hochschule/internal/app/repositories"
	appRoutes "github.com/yigit/hochschule/internal/app/routes"
	appServices "github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/config"
	"github.com/yigit/hochschule/internal/db"
	appMiddleware "github.com/yigit/hochschule/internal/middleware"
	"github.com/yigit/hochschule/internal/pkg/logger"
	"github.com/yigit/hochschule/internal/seed"
)

// Options override parts of the configuration file from the command line
type Options struct {
	ConfigPath string
	Provider   string
	Seed       bool
	LogLevel   string
	LogOutput  io.Writer
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database    *db.Database
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration, applies overrides and initializes the logger.
func LoadConfigAndSetupLogger(opts Options) (*config.Config, zerolog.Logger, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	if opts.Provider != "" {
		cfg.Database.Provider = opts.Provider
	}
	if opts.Seed {
		cfg.Database.Seed = true
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("invalid configuration: %w", err)
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	output := opts.LogOutput
	if output == nil {
		output = os.Stdout
	}
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: output,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store, runs migrations and seeds it when enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("provider", cfg.Database.Provider).Msg("Establishing database connection...")
	database, err := db.Open(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.Ping(pingCtx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		_ = database.Close()
		return nil, err
	}

	if err := Migrate(ctx, database, lgr); err != nil {
		_ = database.Close()
		return nil, err
	}

	if ShouldSeed(cfg) {
		if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(database.DB), lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// Migrate applies pending schema migrations
func Migrate(ctx context.Context, database *db.Database, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.DB).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// ShouldSeed reports whether default data is created on startup. The
// in-memory store starts empty and is always seeded.
func ShouldSeed(cfg *config.Config) bool {
	return cfg.Database.Provider == config.ProviderMemory || cfg.Database.Seed
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.Database, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Database: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.DB)
	deps.Services = appServices.NewServices(deps.Repos)
	deps.Controllers = appRoutes.Controllers{
		Student:  appControllers.NewStudentController(deps.Services.StudentService),
		Course:   appControllers.NewCourseController(deps.Services.CourseService),
		Semester: appControllers.NewSemesterController(deps.Services.SemesterService),
		Lecturer: appControllers.NewLecturerController(deps.Services.LecturerService),
	}
	return deps
}

// Close releases the database
func (d *Dependencies) Close() error {
	if d.Database == nil {
		return nil
	}
	return d.Database.Close()
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		deps.Logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		deps.Logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.Controllers)
	return router
}
