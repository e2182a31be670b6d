package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver     string `validate:"required,oneof=postgres sqlite"`
	SQLitePath string `validate:"required_if=Driver sqlite"`
	DBHost     string `validate:"required_if=Driver postgres"`
	DBPort     string `validate:"required_if=Driver postgres"`
	DBUser     string
	DBPassword string
	DBName     string `validate:"required_if=Driver postgres"`
	JWTSecret  string `validate:"required"`
}

// Load reads configuration from the environment, with an optional .env
// file beside the binary. Missing keys fall back to development defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Driver:     getEnv("WARBLER_DB_DRIVER", DriverSQLite),
		SQLitePath: getEnv("WARBLER_SQLITE_PATH", "./warbler.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "warbler"),
		DBPassword: getEnv("DB_PASSWORD", "warbler_dev_password"),
		DBName:     getEnv("DB_NAME", "warbler"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
