package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv убирает переменные на время теста и восстанавливает их после
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		unsetEnv(t, "APP_ENV", "HTTP_PORT", "HTTP_SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS", "DATABASE_URL", "DB_AUTO_MIGRATE")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, EnvLocal, cfg.Env)
		assert.Equal(t, "4000", cfg.HTTP.Port)
		assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
		assert.True(t, cfg.Database.AutoMigrate)
	})

	t.Run("переменные окружения переопределяют значения", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("HTTP_PORT", "8080")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
		t.Setenv("DB_HOST", "db")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, EnvProd, cfg.Env)
		assert.Equal(t, ":8080", cfg.HTTP.Addr())
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
		assert.Equal(t, "db", cfg.Database.Host)
	})

	t.Run("ошибка: неизвестное окружение", func(t *testing.T) {
		t.Setenv("APP_ENV", "staging")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("DATABASE_URL имеет приоритет", func(t *testing.T) {
		cfg := DatabaseConfig{URL: "postgres://u:secret@db:5432/tuesday", Host: "ignored"}

		assert.Equal(t, "postgres://u:secret@db:5432/tuesday", cfg.DSN())
		assert.NotContains(t, cfg.Redacted(), "secret")
	})

	t.Run("сборка из частей", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "tuesday",
			Password: "secret",
			DBName:   "tuesday",
			SSLMode:  "disable",
		}

		assert.Equal(t, "host=localhost port=5432 user=tuesday password=secret dbname=tuesday sslmode=disable", cfg.DSN())
		assert.NotContains(t, cfg.Redacted(), "secret")
	})
}
