package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the storefront API.
type Config struct {
	Port           string
	AppEnv         string
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig reads configuration from environment variables. The
// POSTGRES_* connection variables are consumed by the database package
// directly.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "50"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS")
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "100"))
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST")
	}
	cfg.RateLimitBurst = burst

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
