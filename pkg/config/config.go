package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	UserID   string

	// Database. Empty means zero-config local SQLite.
	DatabaseURL string
	SQLitePath  string
	MaxConns    int

	// RabbitMQ. Empty means the in-process event bus.
	RabbitMQURL string

	// Reminders (task -> time-of-day), read by the external notification
	// scheduler. This core only stores and reports them.
	MorningReminder time.Duration
	NightReminder   time.Duration
	FlossReminder   time.Duration
}

// Load loads configuration from environment variables. A .env file is
// honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		UserID:      getEnv("BRUSHTRACK_USER_ID", "00000000-0000-0000-0000-000000000001"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("BRUSHTRACK_SQLITE_PATH", ""),
		MaxConns:    getIntEnv("BRUSHTRACK_DB_MAX_CONNS", 4),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		MorningReminder: getDurationEnv("BRUSHTRACK_MORNING_REMINDER", 8*time.Hour),
		NightReminder:   getDurationEnv("BRUSHTRACK_NIGHT_REMINDER", 21*time.Hour),
		FlossReminder:   getDurationEnv("BRUSHTRACK_FLOSS_REMINDER", 21*time.Hour+30*time.Minute),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
