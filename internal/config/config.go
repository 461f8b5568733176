package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
	Alerts        AlertsConfig        `toml:"alerts"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessHoursConfig рабочие часы головного офиса
type BusinessHoursConfig struct {
	HeadquartersZone string `toml:"headquarters_zone"`
	Open             string `toml:"open"`  // HH:MM
	Close            string `toml:"close"` // HH:MM
}

// AlertsConfig настройки уведомлений о ближайших встречах
type AlertsConfig struct {
	LeadMinutes int `toml:"lead_minutes"`
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из переменных окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
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
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_scheduler_service",
		},
		BusinessHours: BusinessHoursConfig{
			HeadquartersZone: domain.DefaultHeadquartersZone,
			Open:             domain.DefaultOpenTime,
			Close:            domain.DefaultCloseTime,
		},
		Alerts: AlertsConfig{
			LeadMinutes: domain.DefaultAlertLeadMinutes,
		},
	}
}

// applyEnv переопределяет секреты и порт из окружения
func (c *Config) applyEnv() error {
	if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = password
	}

	if port, ok := os.LookupEnv("HTTP_PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, port)
		}
		c.Server.HTTPPort = p
	}

	return nil
}

// Validate проверяет конфигурацию.
// Корректность часового пояса и рабочих часов проверяется при создании политики.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	if c.Alerts.LeadMinutes <= 0 {
		return fmt.Errorf("%w: alerts.lead_minutes must be positive", ErrInvalidConfig)
	}

	if c.BusinessHours.HeadquartersZone == "" {
		return fmt.Errorf("%w: business_hours.headquarters_zone is required", ErrInvalidConfig)
	}

	return nil
}
