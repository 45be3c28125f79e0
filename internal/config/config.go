package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP server
	Port int

	// Generative backend for the concierge
	GeminiAPIKey string

	// Environment
	Environment string // "development" or "production"
	LogLevel    string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	port, err := strconv.Atoi(getEnvWithDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		Port:         port,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
