package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultDBPath        = "./estimator.db"
	defaultPort          = "8080"
	defaultAutosaveEvery = 30 * time.Second
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AccessPIN     string
	SessionSecret string
	DBPath        string
	Port          string
	AutosaveEvery time.Duration
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = godotenv.Load()

	cfg := Config{
		AccessPIN:     os.Getenv("ACCESS_PIN"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBPath:        os.Getenv("DB_PATH"),
		Port:          os.Getenv("PORT"),
		AutosaveEvery: parseAutosave(os.Getenv("AUTOSAVE_EVERY")),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.AccessPIN == "" {
		logrus.Warn("ACCESS_PIN is not set")
	}
	if cfg.SessionSecret == "" {
		logrus.Warn("SESSION_SECRET is not set")
	}

	return cfg
}

func parseAutosave(raw string) time.Duration {
	if raw == "" {
		return defaultAutosaveEvery
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < time.Second {
		logrus.WithField("value", raw).Warn("invalid AUTOSAVE_EVERY, using default")
		return defaultAutosaveEvery
	}
	return d
}
