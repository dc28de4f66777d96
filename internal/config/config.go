// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	CatalogPath string // Optional YAML catalog override; empty uses the built-in catalog
	LogLevel    string
	LogFile     string
	MaxWidth    int // Max columns (0 = no limit)
	MaxHeight   int // Max rows (0 = no limit)
}

// Load reads configuration from environment variables
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		CatalogPath: getEnv("STOCKDESK_CATALOG", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		MaxWidth:    getEnvAsInt("STOCKDESK_MAX_WIDTH", 0),
		MaxHeight:   getEnvAsInt("STOCKDESK_MAX_HEIGHT", 0),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
