package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/daouest/factureme/pkg/config"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	if err := migrator.Run(context.Background(), cfg.DatabaseURL, MigrationsFS, log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
