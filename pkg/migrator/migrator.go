package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/daouest/factureme/pkg/logger"
)

// Run opens dbURL with the pgx driver and applies every pending migration in files.
func Run(ctx context.Context, dbURL string, files fs.FS, log logger.Logger) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(ctx, db, "postgres", files, log)
}

// Up applies pending migrations from the root of files using the given goose dialect.
func Up(ctx context.Context, db *sql.DB, dialect string, files fs.FS, log logger.Logger) error {
	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.Info("migrations applied", "version", version)
	return nil
}

// gooseLogger routes goose output through the project logger.
type gooseLogger struct{ log logger.Logger }

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(fmt.Sprintf(format, v...))
}
