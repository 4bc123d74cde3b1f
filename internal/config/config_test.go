// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestbook/pkg/db"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_PATH", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME",
		"DB_QUERY_TIMEOUT", "DB_LOG_SQL", "DB_INIT_SCHEMA"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, db.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "guestbook", cfg.DB.DBName)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Zero(t, cfg.QueryTimeout)
	assert.False(t, cfg.LogSQL)
	assert.False(t, cfg.InitSchema)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DB_LOG_SQL", "true")
	t.Setenv("DB_INIT_SCHEMA", "1")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, db.DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
	assert.True(t, cfg.LogSQL)
	assert.True(t, cfg.InitSchema)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"DB_PORT":          "not-a-port",
		"DB_QUERY_TIMEOUT": "soon",
		"DB_LOG_SQL":       "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := LoadConfig()

			assert.ErrorContains(t, err, key)
		})
	}
}
