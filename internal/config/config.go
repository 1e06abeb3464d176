package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	ModelURL       string
	ModelTimeout   time.Duration
	MigrationsPath string
}

// Load reads configuration from the environment, after a best-effort
// load of a local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ModelURL:       getEnv("MODEL_URL", "http://127.0.0.1:8000"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	timeoutSec := getEnv("MODEL_TIMEOUT", "5")
	sec, err := strconv.Atoi(timeoutSec)
	if err != nil || sec <= 0 {
		return nil, fmt.Errorf("invalid MODEL_TIMEOUT %q", timeoutSec)
	}
	cfg.ModelTimeout = time.Duration(sec) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
