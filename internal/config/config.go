package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvDatabaseDSN переменная окружения, целиком заменяющая строку
// подключения из TOML файла. Удобно для docker-compose и CI
const EnvDatabaseDSN = "DATABASE_DSN"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Jobs     JobsConfig     `toml:"jobs"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к базе данных.
// Переменная окружения DATABASE_DSN имеет приоритет над полями из TOML
func (d *DatabaseConfig) DSN() string {
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// JobsConfig настройки фонового обслуживания бронирований
type JobsConfig struct {
	Enabled bool `toml:"enabled"`

	// Cron-расписания в формате robfig/cron (5 полей)
	CompletePastSchedule  string `toml:"complete_past_schedule"`
	ExpirePendingSchedule string `toml:"expire_pending_schedule"`

	// Сколько минут pending бронирование ждет подтверждения
	PendingTTLMinutes int `toml:"pending_ttl_minutes"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if os.Getenv(EnvDatabaseDSN) == "" && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.Jobs.Enabled && c.Jobs.PendingTTLMinutes <= 0 {
		return fmt.Errorf("jobs.pending_ttl_minutes must be positive when jobs are enabled")
	}
	return nil
}
