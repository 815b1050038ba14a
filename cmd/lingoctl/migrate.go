package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lingo/internal/infra/persistence/postgres"
	"lingo/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type migrateFunc func(ctx context.Context, migrator *postgres.Migrator, out io.Writer) error

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(
		newMigrateSubcommand("up", "Apply all pending migrations", func(ctx context.Context, m *postgres.Migrator, _ io.Writer) error {
			return m.Up(ctx)
		}),
		newMigrateSubcommand("down", "Roll back the latest migration", func(ctx context.Context, m *postgres.Migrator, _ io.Writer) error {
			return m.Down(ctx)
		}),
		newMigrateSubcommand("status", "Show applied and pending migrations", func(ctx context.Context, m *postgres.Migrator, out io.Writer) error {
			return m.Status(ctx, out)
		}),
		newMigrateSubcommand("version", "Print the current schema version", func(ctx context.Context, m *postgres.Migrator, out io.Writer) error {
			version, err := m.Version(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, version)

			return errors.WithStack(err)
		}),
	)

	return cmd
}

func newMigrateSubcommand(use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Postgres == nil {
				return errors.New("postgres section is required for migrations")
			}

			db, err := postgres.Open(cfg, logger)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}
			defer sqlDB.Close()

			migrator, err := postgres.NewMigrator(sqlDB, logger)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := run(cmd.Context(), migrator, cmd.OutOrStdout()); err != nil {
				return err
			}

			logger.Info("Migration command finished",
				slog.String("command", use),
				slog.String("elapsed", util.FormatDuration(time.Since(start))),
			)

			return nil
		},
	}
}
