package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	LogLevel           string
	RateLimit          string
	CORSAllowedOrigins []string
	SeedCurrencies     bool
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SEED_CURRENCIES", true)

	dbURL := v.GetString("PGSQL_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}

	origins := strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		DatabaseURL:        dbURL,
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: origins,
		SeedCurrencies:     v.GetBool("SEED_CURRENCIES"),
	}, nil
}
