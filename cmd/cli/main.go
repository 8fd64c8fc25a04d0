package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/fyoffice/fyoffice/internal/buildinfo"
	"github.com/fyoffice/fyoffice/internal/client/cli"
	"github.com/fyoffice/fyoffice/internal/client/config"
	"github.com/fyoffice/fyoffice/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
