package config

import (
	"os"
	"time"
)

type AppConfig struct {
	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig

	Environment string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func GetDefaultConfig() *AppConfig {
	environment := os.Getenv("APP_ENV")

	if environment == "" {
		environment = "development"
	}

	return &AppConfig{
		RateLimitEnabled: os.Getenv("RATE_LIMIT_ENABLED") == "true",
		RateLimitConfigs: map[string]RateLimitConfig{
			"/v1/checklist": {
				Requests: 100,
				Window:   time.Minute,
			},
			"/v1/checklist/:id": {
				Requests: 100,
				Window:   time.Minute,
			},
			"default": {
				Requests: 60,
				Window:   time.Minute,
			},
		},
		Environment: environment,
	}
}
