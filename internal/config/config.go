// internal/config/config.go
package config

import (
	"os"
	"time"

	"rideflow/pkg/db"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort     string
	JWTSecret      string
	TokenTTL       time.Duration
	MigrationsPath string
	DB             db.Config
}

// LoadConfig loads configuration from the environment, with .env support
// for local development.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load(".env")

	return &AppConfig{
		ServerPort:     cast.ToString(getOrDefault("SERVER_PORT", "8080")),
		JWTSecret:      cast.ToString(getOrDefault("JWT_SECRET", "dev-key")),
		TokenTTL:       cast.ToDuration(getOrDefault("TOKEN_TTL", "168h")), // 7 days
		MigrationsPath: cast.ToString(getOrDefault("MIGRATIONS_PATH", "migrations")),
		DB: db.Config{
			Host:     cast.ToString(getOrDefault("DB_HOST", "localhost")),
			Port:     cast.ToInt(getOrDefault("DB_PORT", 5432)),
			User:     cast.ToString(getOrDefault("DB_USER", "user")),
			Password: cast.ToString(getOrDefault("DB_PASSWORD", "password")),
			DBName:   cast.ToString(getOrDefault("DB_NAME", "rideflow")),
			SSLMode:  cast.ToString(getOrDefault("DB_SSLMODE", "disable")),
		},
	}, nil
}

func getOrDefault(key string, defaultValue interface{}) interface{} {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
