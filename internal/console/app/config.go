package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendURL     string        // Required: base URL of the partner-management backend
	BackendTimeout time.Duration // Optional: per-request backend timeout (default: 10s)

	MasterKeyPath string // Optional: path to master encryption key file (default: env ADMIN_MASTER_KEY)
	DatabaseFile  string // Optional: path to SQLite session database file (default: ./console.db)

	SessionTTL     time.Duration // Optional: session lifetime when the token has no expiry (default: 12h)
	SuggestTimeout time.Duration // Optional: deadline for backend code lookups (default: 2s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		BackendURL:           getEnvOrDefault("CONSOLE_BACKEND_URL", "http://localhost:3001"),
		BackendTimeout:       getEnvDurationOrDefault("CONSOLE_BACKEND_TIMEOUT", 10*time.Second),
		MasterKeyPath:        os.Getenv("CONSOLE_MASTER_KEY_PATH"),
		DatabaseFile:         getEnvOrDefault("CONSOLE_DATABASE_FILE", "console.db"),
		SessionTTL:           getEnvDurationOrDefault("CONSOLE_SESSION_TTL", 12*time.Hour),
		SuggestTimeout:       getEnvDurationOrDefault("CONSOLE_SUGGEST_TIMEOUT", 2*time.Second),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
