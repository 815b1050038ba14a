package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"log/slog"

	"lingo/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrator applies the embedded goose migrations.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator binds goose to the embedded SQL files and the postgres dialect.
func NewMigrator(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errors.Wrap(err, "failed to set goose dialect")
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	before, err := m.Version(ctx)
	if err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	after, err := m.Version(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Postgres schema migrated",
		slog.Int64("from_version", before),
		slog.Int64("to_version", after),
	)

	return nil
}

// Down rolls back the latest migration.
func (m *Migrator) Down(ctx context.Context) error {
	return errors.Wrap(goose.DownContext(ctx, m.db, migrationsDir), "failed to roll back migration")
}

// Version returns the current schema version, 0 for an empty database.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read schema version")
	}

	return version, nil
}

// Status writes the applied/pending state of every migration to w.
func (m *Migrator) Status(ctx context.Context, w io.Writer) error {
	goose.SetLogger(&writerLogger{w: w})
	defer goose.SetLogger(goose.NopLogger())

	return errors.Wrap(goose.StatusContext(ctx, m.db, migrationsDir), "failed to read migration status")
}

type writerLogger struct {
	w io.Writer
}

func (l *writerLogger) Fatalf(format string, v ...any) {
	l.Printf(format, v...)
}

func (l *writerLogger) Printf(format string, v ...any) {
	_, _ = fmt.Fprintf(l.w, format, v...)
}
