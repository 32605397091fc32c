package config

import (
	"os"
	"strconv"

	"github.com/google/uuid"
)

// DefaultOwnerID is the user every unauthenticated request acts as. The
// system has no user records; ownership is just an opaque id on each event.
var DefaultOwnerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type Config struct {
	DB     DBConfig
	JWT    JWTConfig
	Server ServerConfig
	Auth   AuthConfig
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	DefaultUserID uuid.UUID
}

func Load() *Config {
	return &Config{
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "gatherly"),
			Password: getEnv("DB_PASSWORD", "gatherly_secret"),
			Name:     getEnv("DB_NAME", "gatherly"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "gatherly.db"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-me-in-production"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Auth: AuthConfig{
			DefaultUserID: getEnvAsUUID("DEFAULT_USER_ID", DefaultOwnerID),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsUUID(key string, fallback uuid.UUID) uuid.UUID {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := uuid.Parse(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
