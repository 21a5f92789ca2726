package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration parameters
type Config struct {
	WeatherApiKey string
	HTTPAddr      string
	SelfTest      bool
}

// Load loads configuration from environment variables and .env file
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	config := &Config{
		WeatherApiKey: getEnv("WEATHER_API_KEY", ""),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		SelfTest:      getEnvBool("SELF_TEST", false),
	}

	if config.WeatherApiKey == "" {
		// Not fatal: every tool reports "API key not set." to the caller instead.
		log.Printf("Warning: WEATHER_API_KEY is not configured")
	}

	return config
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// getEnvBool gets environment variable as boolean with fallback
func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	case "":
		return fallback
	default:
		log.Printf("Warning: invalid boolean value for %s: %s, using default: %v", key, value, fallback)
		return fallback
	}
}
