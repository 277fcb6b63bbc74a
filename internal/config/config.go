package config

import (
	"os"
	"strconv"
)

// SeedConfig controls what the catalog holds at startup.
type SeedConfig struct {
	// File is a YAML seed file; when empty the built-in samples are used.
	File string
	// Defaults enables seeding at all. Disable it to start with an empty catalog.
	Defaults bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost     string
	Port        string
	ServiceName string
	Seed        SeedConfig
	Log         LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		ServiceName: getEnv("OTEL_SERVICE_NAME", "doccatalog"),
		Seed: SeedConfig{
			File:     getEnv("SEED_FILE", ""),
			Defaults: getEnvBool("SEED_DEFAULTS", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
