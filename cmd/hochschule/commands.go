package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/hochschule/internal/app/migrations"
	"github.com/yigit/hochschule/internal/bootstrap"
	"github.com/yigit/hochschule/internal/config"
	"github.com/yigit/hochschule/internal/console"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/server"
)

// flags shared by every command
type flags struct {
	configPath string
	provider   string
	seed       bool
	logLevel   string
}

func (f *flags) options() bootstrap.Options {
	return bootstrap.Options{
		ConfigPath: f.configPath,
		Provider:   f.provider,
		Seed:       f.seed,
		LogLevel:   f.logLevel,
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "hochschule",
		Short:         "Manage students, courses, semesters and lecturers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd, f)
		},
	}

	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	root.PersistentFlags().StringVarP(&f.provider, "provider", "p", "", "Database provider (memory or postgres)")
	root.PersistentFlags().BoolVar(&f.seed, "seed", false, "Create default data when the store is empty")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		&cobra.Command{
			Use:   "console",
			Short: "Run the interactive console (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runConsole(cmd, f)
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the JSON API over HTTP",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd, f)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(cmd, f)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create default data in an empty store",
			RunE: func(cmd *cobra.Command, _ []string) error {
				f.seed = true
				return runSeed(cmd, f)
			},
		},
	)
	return root
}

// runConsole starts the menu driven front end. Logs go to stderr at warn
// unless a level is requested, so they stay out of the menus.
func runConsole(cmd *cobra.Command, f *flags) error {
	opts := f.options()
	opts.LogOutput = os.Stderr
	if opts.LogLevel == "" {
		opts.LogLevel = "warn"
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts)
	if err != nil {
		return err
	}

	in := console.NewInput(cmd.InOrStdin(), cmd.OutOrStdout())
	if cfg.Database.Provider == "" {
		provider := config.ProviderMemory
		if isatty.IsTerminal(os.Stdin.Fd()) {
			if provider, err = console.ChooseProvider(in); err != nil {
				return err
			}
		}
		cfg.Database.Provider = provider
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	database, err := bootstrap.SetupDatabase(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	deps := bootstrap.BuildDependencies(database, lgr)
	defer deps.Close()

	return console.NewApp(deps.Services, in).Run(cmd.Context())
}

func runServe(cmd *cobra.Command, f *flags) error {
	cfg, lgr, err := loadWithProvider(f)
	if err != nil {
		return err
	}

	database, err := bootstrap.SetupDatabase(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	deps := bootstrap.BuildDependencies(database, lgr)
	defer deps.Close()

	return server.NewServer(cfg, deps).Run(cmd.Context())
}

func runMigrate(cmd *cobra.Command, f *flags) error {
	cfg, lgr, err := loadWithProvider(f)
	if err != nil {
		return err
	}

	database, err := db.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := bootstrap.Migrate(cmd.Context(), database, lgr); err != nil {
		return err
	}
	applied, err := migrations.NewMigrator(database.DB).Applied(cmd.Context())
	if err != nil {
		return err
	}
	for _, version := range applied {
		fmt.Fprintln(cmd.OutOrStdout(), "applied", version)
	}
	return nil
}

// runSeed opens, migrates and seeds the store, then exits
func runSeed(cmd *cobra.Command, f *flags) error {
	cfg, lgr, err := loadWithProvider(f)
	if err != nil {
		return err
	}

	database, err := bootstrap.SetupDatabase(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	return database.Close()
}

// loadWithProvider loads the configuration for non-interactive commands,
// falling back to the in-memory store when no provider is set
func loadWithProvider(f *flags) (*config.Config, zerolog.Logger, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(f.options())
	if err != nil {
		return nil, lgr, err
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = config.ProviderMemory
		lgr.Warn().Msg("No database provider configured, using the in-memory store")
	}
	return cfg, lgr, nil
}
