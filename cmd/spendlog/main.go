package main

import (
	"context"
	"os"

	"spendlog/internal/app"
	"spendlog/internal/cli"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.OpenStore(logger, cfg)

	logger.Info("Starting spendlog", "backend", cfg.DataBackend)

	session := app.New(store, logger, os.Stdin, os.Stdout)
	if err := session.Run(context.Background()); err != nil {
		logger.Error("Session ended with error", "error", err)
		_ = store.Close()
		os.Exit(1)
	}

	if err := store.Close(); err != nil {
		logger.Error("Failed to close store", "error", err)
		os.Exit(1)
	}
}
