// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"guestbook/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	LogLevel   string
	DB         db.Config

	// QueryTimeout bounds each statement. Zero leaves it to the driver.
	QueryTimeout time.Duration
	// LogSQL logs every statement at debug level.
	LogSQL bool
	// InitSchema creates the guestbook table on startup when missing.
	InitSchema bool
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	driver := getEnv("DB_DRIVER", db.DriverPostgres)

	dbPort, err := getEnvInt("DB_PORT", defaultPort(driver))
	if err != nil {
		return nil, err
	}
	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 10)
	if err != nil {
		return nil, err
	}
	connLifetime, err := getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	queryTimeout, err := getEnvDuration("DB_QUERY_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	logSQL, err := getEnvBool("DB_LOG_SQL", false)
	if err != nil {
		return nil, err
	}
	initSchema, err := getEnvBool("DB_INIT_SCHEMA", false)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DB: db.Config{
			Driver:          driver,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            dbPort,
			User:            getEnv("DB_USER", "user"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", "guestbook"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			Path:            getEnv("DB_PATH", "guestbook.db"),
			MaxOpenConns:    maxOpen,
			MaxIdleConns:    maxIdle,
			ConnMaxLifetime: connLifetime,
		},
		QueryTimeout: queryTimeout,
		LogSQL:       logSQL,
		InitSchema:   initSchema,
	}, nil
}

func defaultPort(driver string) int {
	if driver == db.DriverMySQL {
		return 3306
	}
	return 5432
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
