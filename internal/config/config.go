// Package config loads settleup settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "settleup-dev-secret-change-me"

// Config holds application configuration.
type Config struct {
	Port          int
	DBPath        string
	StaticPath    string
	LogLevel      string
	JWTSecret     string
	TokenDuration time.Duration
	Currency      string // ISO 4217 code used when formatting amounts for display
}

// Load reads configuration from environment variables, with values from a .env
// file in the working directory used when the variable is not set.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", 8080)
	v.SetDefault("DB_PATH", "./data/settleup.db")
	v.SetDefault("STATIC_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("TOKEN_DURATION", "720h")
	v.SetDefault("CURRENCY", "USD")
	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetInt("PORT"),
		DBPath:        v.GetString("DB_PATH"),
		StaticPath:    v.GetString("STATIC_PATH"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenDuration: v.GetDuration("TOKEN_DURATION"),
		Currency:      v.GetString("CURRENCY"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.TokenDuration <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_DURATION %q", v.GetString("TOKEN_DURATION"))
	}
	return cfg, nil
}

// DefaultSecret reports whether JWT_SECRET was left at the development value.
func (c *Config) DefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}
