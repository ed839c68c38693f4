package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/ran/internal/cli"
	"github.com/briangreenhill/ran/internal/config"
	"github.com/briangreenhill/ran/internal/training"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	w := os.Stdout
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(w, os.Args[1:], logger, cfg); err != nil {
		logger.Error("Error running ran", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, logger *slog.Logger, cfg config.Config) error {
	c := cli.NewCLI(w, logger, cfg, training.Default(), args)

	if err := c.Run(args); err != nil {
		return err
	}

	return nil
}
