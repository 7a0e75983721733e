package main

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/internal/infrastructure/database"
)

var migrateLimit int

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back database migrations",
		Long: `Apply or roll back the SQL migrations in DB_MIGRATIONS_DIR.

Examples:
  meeting-copilot migrate up
  meeting-copilot migrate down --limit 1`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE:      runMigrate,
	}

	cmd.Flags().IntVarP(&migrateLimit, "limit", "n", 0, "maximum number of migrations to apply (0 = all)")

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	var direction migrate.MigrationDirection
	switch args[0] {
	case "up":
		direction = migrate.Up
	case "down":
		direction = migrate.Down
	default:
		return fmt.Errorf("unknown direction %q: expected up or down", args[0])
	}

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db) //nolint:errcheck

	n, err := database.Migrate(db, cfg.Database.MigrationsDir, direction, migrateLimit, logger)
	if err != nil {
		return err
	}

	logger.Info("✅ Migrations finished", zap.String("direction", args[0]), zap.Int("applied", n))
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) %s\n", n, args[0])
	return nil
}
