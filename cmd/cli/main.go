package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/syncveil/syncveil/internal/buildinfo"
	"github.com/syncveil/syncveil/internal/client/cli"
	"github.com/syncveil/syncveil/internal/client/config"
	"github.com/syncveil/syncveil/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
