package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"book-management/internal/config"
	"book-management/pkg/container"
	"book-management/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// Load từ .env file (development/local)
	// Production sẽ dùng system environment variables
	envErr := godotenv.Load()

	if err := newRootCmd(envErr == nil).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(dotenvLoaded bool) *cobra.Command {
	var migrate bool

	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := setup(dotenvLoaded)
		if err != nil {
			return err
		}
		if err := Serve(cmd.Context(), cfg, migrate); err != nil {
			log.Error().Err(err).Msg("Server stopped")
			return err
		}
		return nil
	}

	root := &cobra.Command{
		Use:           "bookmanagement",
		Short:         "Book and author management REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  serve,
	}
	for _, cmd := range []*cobra.Command{root, serveCmd} {
		cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the database schema before serving")
	}

	root.AddCommand(
		serveCmd,
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema for the configured driver",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := setup(dotenvLoaded)
				if err != nil {
					return err
				}
				return runMigrate(cmd.Context(), cfg)
			},
		},
	)

	return root
}

// setup loads the configuration and initializes logging and the gin mode.
func setup(dotenvLoaded bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if !dotenvLoaded {
		logger.Debug("No .env file found, using system environment variables")
	}

	// ========================================
	// SET GIN MODE
	// ========================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Str("environment", cfg.App.Environment).Str("driver", cfg.Database.Driver).Msg("Configuration loaded")
	return cfg, nil
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	db, err := container.OpenDatabase(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database")
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", map[string]interface{}{"error": err.Error()})
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		return err
	}

	log.Info().Msg("Migration completed")
	return nil
}
