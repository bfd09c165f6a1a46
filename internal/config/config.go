package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Availability AvailabilityConfig `toml:"availability"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig параметры кэша доступности
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Address    string `toml:"address"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// AvailabilityConfig параметры расчета доступных слотов
type AvailabilityConfig struct {
	SlotIntervalMinutes   int `toml:"slot_interval_minutes"`
	DefaultBookingMinutes int `toml:"default_booking_minutes"`
	MinNoticeMinutes      int `toml:"min_notice_minutes"`
	MonthWorkers          int `toml:"month_workers"`
}

// RateLimitConfig ограничение частоты запросов к публичным эндпоинтам (на IP)
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv переопределяет секреты из окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проставляет значения по умолчанию и проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "table_booking_service"
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("%w: redis.address is required when redis is enabled", ErrInvalidConfig)
	}
	setDefault(&c.Redis.TTLSeconds, 60)

	setDefault(&c.Availability.SlotIntervalMinutes, 30)
	setDefault(&c.Availability.DefaultBookingMinutes, 60)
	setDefault(&c.Availability.MonthWorkers, 8)
	if c.Availability.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: availability.min_notice_minutes must not be negative", ErrInvalidConfig)
	}
	if 24*60%c.Availability.SlotIntervalMinutes != 0 {
		return fmt.Errorf("%w: availability.slot_interval_minutes=%d must divide a day",
			ErrInvalidConfig, c.Availability.SlotIntervalMinutes)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("%w: rate_limit.requests_per_second must be positive", ErrInvalidConfig)
		}
		setDefault(&c.RateLimit.Burst, 1)
	}

	return nil
}

// setDefault проставляет значение, если текущее не задано (<= 0)
func setDefault(field *int, value int) {
	if *field <= 0 {
		*field = value
	}
}
