package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

// EnvConfigPath переменная окружения, переопределяющая путь к файлу конфигурации
const EnvConfigPath = "CONFIG_PATH"

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // в секундах
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SchedulingConfig настройки движка расписания
type SchedulingConfig struct {
	SlotIntervalMinutes int `toml:"slot_interval_minutes"`
	HorizonDays         int `toml:"horizon_days"`
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

// DSN строка подключения к PostgreSQL в формате key=value
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// PollInterval период обновления признака "магазин открыт"
func (c SchedulingConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Path возвращает путь к конфигурации: значение CONFIG_PATH или fallback
func Path(fallback string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return fallback
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "store_availability",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "store-availability",
			Path:        "/metrics",
		},
		Scheduling: SchedulingConfig{
			SlotIntervalMinutes: domain.SlotIntervalMinutes,
			HorizonDays:         domain.DefaultHorizonDays,
			PollIntervalSeconds: 60,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	// Сетка слотов фиксирована
	if c.Scheduling.SlotIntervalMinutes != domain.SlotIntervalMinutes {
		return fmt.Errorf("%w: scheduling.slot_interval_minutes must be %d, got %d",
			ErrInvalidConfig, domain.SlotIntervalMinutes, c.Scheduling.SlotIntervalMinutes)
	}

	if c.Scheduling.HorizonDays <= 0 || c.Scheduling.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: scheduling.horizon_days must be in 1..%d, got %d",
			ErrInvalidConfig, domain.MaxHorizonDays, c.Scheduling.HorizonDays)
	}

	if c.Scheduling.PollIntervalSeconds <= 0 {
		return fmt.Errorf("%w: scheduling.poll_interval_seconds must be positive", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
