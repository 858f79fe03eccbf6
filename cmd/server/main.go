package main

import (
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "advocate",
		Short:         "Multi-tenant practice management API for law firms",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and background jobs (default)",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update database tables and exit",
			RunE:  runMigrate,
		},
	)
	return root
}

// loadConfig reads and validates settings and installs the stdout logger.
func loadConfig() (*config.Config, slog.Handler, error) {
	cfg := config.Load()
	stdout := logging.Setup(cfg.IsDevelopment())
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, stdout, nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	pool := database.NewPool(cfg)
	defer pool.Close()

	if err := pool.Migrate(); err != nil {
		return err
	}
	slog.Info("migration completed")
	return nil
}
