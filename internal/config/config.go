package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GinMode      string
	Database     DatabaseConfig
	JWT          JWTConfig
	SeedDefaults bool
	TestMode     bool
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	tokenTTLDays, err := strconv.Atoi(getEnv("TOKEN_TTL_DAYS", "90"))
	if err != nil || tokenTTLDays < 1 {
		tokenTTLDays = 90
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "sqlite:gardenlog.db"),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TokenTTL: time.Duration(tokenTTLDays) * 24 * time.Hour,
		},
		SeedDefaults: getEnv("SEED_DEFAULTS", "true") == "true",
		TestMode:     getEnv("TEST_MODE", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
