package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/boffice/internal/config"
	"github.com/dmitrijs2005/boffice/internal/logging"
	"github.com/dmitrijs2005/boffice/internal/shell"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app := shell.NewApp(cfg, logger)

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "backoffice terminated", "error", err)
		os.Exit(1)
	}

}
