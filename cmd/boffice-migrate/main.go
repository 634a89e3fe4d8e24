package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/boffice/internal/config"
	"github.com/dmitrijs2005/boffice/internal/logging"
	"github.com/dmitrijs2005/boffice/internal/storage"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	seed := config.LoadSeedConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	m, err := storage.NewPostgresManager(cfg.DSN(), logger)
	if err != nil {
		logger.Error(ctx, "db init error", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	if err := m.RunMigrations(ctx); err != nil {
		logger.Error(ctx, err.Error())
		m.Close()
		os.Exit(1)
	}

	if !seed.Enabled() {
		return
	}

	if _, err := m.SeedOperator(ctx, seed); err != nil {
		logger.Error(ctx, "seed error", "error", err)
		m.Close()
		os.Exit(1)
	}

}
