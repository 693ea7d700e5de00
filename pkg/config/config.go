package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DatabaseConfig selects the store backend. Driver is "sqlite" or
// "postgres"; DSN is a file path for sqlite and a connection string for
// postgres.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// AppConfig holds interactive-shell settings
type AppConfig struct {
	PageSize    int    `yaml:"page_size"`
	ExitKeyword string `yaml:"exit_keyword"`
}

// LogConfig holds file-logging settings
type LogConfig struct {
	File string `yaml:"file"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
	Log      LogConfig      `yaml:"log"`
}

// Load builds the configuration from defaults, then the YAML file at path
// when present, then environment variables. A .env file is honored before
// the environment is read.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: "chirp.db"},
		App:      AppConfig{PageSize: 5, ExitKeyword: "!exit"},
		Log:      LogConfig{File: "logs/chirp.log"},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if os.IsNotExist(err) {
		log.Println("No config file found, using defaults.")
	} else {
		return nil, err
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg.Database.Driver = getEnv("CHIRP_DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnv("CHIRP_DB_DSN", cfg.Database.DSN)
	cfg.App.PageSize = getEnvInt("CHIRP_PAGE_SIZE", cfg.App.PageSize)
	cfg.App.ExitKeyword = getEnv("CHIRP_EXIT_KEYWORD", cfg.App.ExitKeyword)
	cfg.Log.File = getEnv("CHIRP_LOG_FILE", cfg.Log.File)

	if cfg.App.PageSize < 1 {
		cfg.App.PageSize = 5
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: not a number.\n", key, value)
		return defaultValue
	}
	return n
}
