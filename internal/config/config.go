package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	SimplyBook   SimplyBookConfig   `toml:"simplybook"`
	Mollie       MollieConfig       `toml:"mollie"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SimplyBookConfig настройки провайдера расписаний
type SimplyBookConfig struct {
	APIURL       string `toml:"api_url"`
	CompanyLogin string `toml:"company_login"`
	APIKey       string `toml:"api_key"`
	SecretKey    string `toml:"secret_key"` // используется для подписи подтверждений бронирования
	Timeout      int    `toml:"timeout"`    // секунды
	TokenTTL     int    `toml:"token_ttl"`  // минуты; консервативная доля реального времени жизни токена
}

// MollieConfig настройки платежного провайдера
type MollieConfig struct {
	APIURL      string `toml:"api_url"`
	APIKey      string `toml:"api_key"`
	Timeout     int    `toml:"timeout"` // секунды
	Currency    string `toml:"currency"`
	RedirectURL string `toml:"redirect_url"`
	WebhookURL  string `toml:"webhook_url"`
}

// CatalogConfig настройки кэша каталога
type CatalogConfig struct {
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
}

// AvailabilityConfig настройки резолвера доступности
type AvailabilityConfig struct {
	DefaultRangeDays int `toml:"default_range_days"`
}

// Load загружает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для необязательных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.File == "" {
		c.Logs.File = "gateway.log"
	}
	if c.SimplyBook.Timeout == 0 {
		c.SimplyBook.Timeout = 15
	}
	if c.SimplyBook.TokenTTL == 0 {
		c.SimplyBook.TokenTTL = 45
	}
	if c.Mollie.Timeout == 0 {
		c.Mollie.Timeout = 15
	}
	if c.Mollie.Currency == "" {
		c.Mollie.Currency = "EUR"
	}
	if c.Catalog.CacheTTLMinutes == 0 {
		c.Catalog.CacheTTLMinutes = domain.DefaultCatalogTTLMinutes
	}
	if c.Availability.DefaultRangeDays == 0 {
		c.Availability.DefaultRangeDays = domain.DefaultAvailabilityRangeDays
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "schedule-gateway"
	}
}

// validate проверяет обязательные поля
func (c *Config) validate() error {
	if c.SimplyBook.APIURL == "" {
		return fmt.Errorf("%w: simplybook.api_url is required", ErrInvalidConfig)
	}
	if c.SimplyBook.CompanyLogin == "" {
		return fmt.Errorf("%w: simplybook.company_login is required", ErrInvalidConfig)
	}
	if c.SimplyBook.APIKey == "" {
		return fmt.Errorf("%w: simplybook.api_key is required", ErrInvalidConfig)
	}
	if c.Mollie.APIURL == "" {
		return fmt.Errorf("%w: mollie.api_url is required", ErrInvalidConfig)
	}
	if c.Mollie.APIKey == "" {
		return fmt.Errorf("%w: mollie.api_key is required", ErrInvalidConfig)
	}
	return nil
}
