package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	HTTP     HTTPConfig
	Database DatabaseConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:""`
	Port            string        `env:"HTTP_PORT" env-default:"4000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	StaticDir       string        `env:"STATIC_DIR" env-default:""`
}

type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL" env-default:""`
	Host         string `env:"DB_HOST" env-default:"localhost"`
	Port         string `env:"DB_PORT" env-default:"5432"`
	User         string `env:"DB_USER" env-default:"tuesday"`
	Password     string `env:"DB_PASSWORD" env-default:"tuesday"`
	DBName       string `env:"DB_NAME" env-default:"tuesday"`
	SSLMode      string `env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	AutoMigrate  bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

// DSN возвращает DATABASE_URL, если он задан, иначе собирает строку подключения из DB_*
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// Redacted - DSN без пароля, пригоден для логов
func (c DatabaseConfig) Redacted() string {
	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil {
			return "<invalid DATABASE_URL>"
		}
		return u.Redacted()
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s", c.Host, c.Port, c.User, c.DBName)
}

func (c HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("unknown env: %s", cfg.Env)
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
