package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Значения по умолчанию
const (
	defaultHTTPPort        = 8080
	defaultReadTimeout     = 10
	defaultWriteTimeout    = 10
	defaultIdleTimeout     = 60
	defaultShutdownTimeout = 15
	defaultLogLevel        = "info"
	defaultMetricsPath     = "/metrics"
	defaultWebhookTimeout  = 5
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Data    DataConfig    `toml:"data"`
	Webhook WebhookConfig `toml:"webhook"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DataConfig пути к CSV-выгрузкам клиники
type DataConfig struct {
	ServicesFile string `toml:"services_file"`
	ScheduleFile string `toml:"schedule_file"`
}

// WebhookConfig настройки отправки уведомлений о бронированиях
type WebhookConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = defaultIdleTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Logs.Level == "" {
		c.Logs.Level = defaultLogLevel
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
	if c.Webhook.Timeout == 0 {
		c.Webhook.Timeout = defaultWebhookTimeout
	}
}

func (c *Config) validate() error {
	if c.Data.ServicesFile == "" {
		return fmt.Errorf("%w: data.services_file is required", ErrInvalidConfig)
	}
	if c.Data.ScheduleFile == "" {
		return fmt.Errorf("%w: data.schedule_file is required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.ServiceName == "" {
		return fmt.Errorf("%w: metrics.service_name is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Webhook.Enabled && c.Webhook.URL == "" {
		return fmt.Errorf("%w: webhook.url is required when webhook is enabled", ErrInvalidConfig)
	}
	return nil
}
