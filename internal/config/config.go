package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Database      DatabaseConfig      `toml:"database"`
	SheetStore    SheetStoreConfig    `toml:"sheetstore"`
	Cache         CacheConfig         `toml:"cache"`
	Sessions      SessionsConfig      `toml:"sessions"`
	SMTP          SMTPConfig          `toml:"smtp"`
	Booking       BookingConfig       `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
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

// DatabaseConfig настройки Postgres (журнал аудита бронирований)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к Postgres
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SheetStoreConfig настройки клиента удалённого документа
// (ledger бронирований и учётные данные поставщиков)
type SheetStoreConfig struct {
	URL        string `toml:"url"`
	DocumentID string `toml:"document_id"`
	Timeout    int    `toml:"timeout"` // секунды, ограничивает load и replace
}

// CacheConfig настройки кэша снапшотов ledger'а
type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds"` // окно свежести снапшота
}

// SessionsConfig настройки сессий поставщиков
type SessionsConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// SMTPConfig настройки отправки подтверждений по почте
type SMTPConfig struct {
	Host       string   `toml:"host"`
	Port       int      `toml:"port"`
	User       string   `toml:"user"`
	Password   string   `toml:"password"`
	From       string   `toml:"from"`
	DefaultCC  []string `toml:"default_cc"`
	TimeoutSec int      `toml:"timeout"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	AdvanceBookingDays int `toml:"advance_booking_days"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
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
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.SheetStore.Timeout == 0 {
		c.SheetStore.Timeout = 10
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 300
	}
	if c.Sessions.TTLMinutes == 0 {
		c.Sessions.TTLMinutes = 30
	}
	if c.SMTP.TimeoutSec == 0 {
		c.SMTP.TimeoutSec = 15
	}
	if c.Booking.AdvanceBookingDays == 0 {
		c.Booking.AdvanceBookingDays = 30
	}
}

func (c *Config) validate() error {
	if c.SheetStore.URL == "" {
		return fmt.Errorf("config: sheetstore.url is required")
	}
	if c.SheetStore.DocumentID == "" {
		return fmt.Errorf("config: sheetstore.document_id is required")
	}
	return nil
}
