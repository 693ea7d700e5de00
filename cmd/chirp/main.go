package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"chirp/internal/app"
	"chirp/internal/ui"
	"chirp/pkg/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// run owns every resource the program acquires. Returning instead of
// exiting keeps the deferred releases on every path out of the main loop.
func run() error {
	configPath := flag.String("config", "config.yaml", "Path to YAML config file")
	dbPath := flag.String("db", "", "SQLite database file (overrides configuration)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if *dbPath != "" {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = *dbPath
	}

	logger, logFile, err := setupLogger(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("set up logger: %w", err)
	}
	defer logFile.Close()
	logger = logger.With("session", uuid.NewString())
	slog.SetDefault(logger)

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer config.CloseDB(db) // Ensure database connection is closed when run exits
	logger.Info("database connected", "driver", cfg.Database.Driver)

	console := ui.NewPrompter(os.Stdin, os.Stdout, cfg.App.ExitKeyword)

	ui.ClearScreen()
	ui.Banner(cfg.App.ExitKeyword)
	if err := console.Acknowledge(); err != nil {
		if errors.Is(err, ui.ErrExitRequested) {
			return nil
		}
		return err
	}

	application, err := app.New(db, console, logger, cfg.App.PageSize)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	if err := application.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Info("input stream closed")
			return nil
		}
		logger.Error("application terminated", "error", err)
		return err
	}
	logger.Info("application exited")
	return nil
}

// setupLogger creates the log directory if needed and returns a slog.Logger
// that writes to a file. Prompts and menus own stdout, so log output stays
// out of the terminal stream.
func setupLogger(logPath string) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, nil, err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(logFile, nil))
	return logger, logFile, nil
}
