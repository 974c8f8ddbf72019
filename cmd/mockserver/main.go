package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/modusplant/plantkit/pkg/httpserver"
	"github.com/modusplant/plantkit/pkg/logger"
	"github.com/modusplant/plantkit/pkg/mockserver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Optional; real deployments configure through the environment.
	_ = godotenv.Load()

	log, err := logger.NewFromEnv(logger.WithAttr(slog.String("service", "mockserver")))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	var cfg httpserver.Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse server config: %w", err)
	}

	srv := mockserver.New(mockserver.WithLogger(log))
	return httpserver.NewFromConfig(cfg, httpserver.WithLogger(log)).
		Run(context.Background(), srv.Router())
}
