package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig      `toml:"server"`
	Database       DatabaseConfig    `toml:"database"`
	Logs           LogsConfig        `toml:"logs"`
	Metrics        MetricsConfig     `toml:"metrics"`
	Redis          RedisConfig       `toml:"redis"`
	Kafka          KafkaConfig       `toml:"kafka"`
	Scheduling     SchedulingConfig  `toml:"scheduling"`
	StaffService   IntegrationConfig `toml:"staff_service"`
	CatalogService IntegrationConfig `toml:"catalog_service"`
	ClientService  IntegrationConfig `toml:"client_service"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки кеша сеток
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	GridTTLSec int    `toml:"grid_ttl_sec"`
}

// GridTTL время жизни закешированной сетки
func (r RedisConfig) GridTTL() time.Duration {
	return time.Duration(r.GridTTLSec) * time.Second
}

// KafkaConfig настройки публикации событий
type KafkaConfig struct {
	Enabled         bool     `toml:"enabled"`
	Brokers         []string `toml:"brokers"`
	Topic           string   `toml:"topic"`
	WriteTimeoutSec int      `toml:"write_timeout_sec"`
}

// IntegrationConfig настройки HTTP клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ViewConfig пресет представления сетки
type ViewConfig struct {
	StartHour           int `toml:"start_hour"`
	EndHour             int `toml:"end_hour"`
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
}

// SchedulingConfig настройки движка расписания
type SchedulingConfig struct {
	Timezone                   string                `toml:"timezone"`
	DefaultStartHour           int                   `toml:"default_start_hour"`
	DefaultEndHour             int                   `toml:"default_end_hour"`
	DefaultSlotDurationMinutes int                   `toml:"default_slot_duration_minutes"`
	MinBookableMinutes         int                   `toml:"min_bookable_minutes"`
	Views                      map[string]ViewConfig `toml:"views"`
}

// Location возвращает часовой пояс салона
func (s SchedulingConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

// View возвращает пресет представления; для неизвестного - значения по умолчанию
func (s SchedulingConfig) View(view domain.GridView) ViewConfig {
	if v, ok := s.Views[string(view)]; ok {
		return v
	}
	return ViewConfig{
		StartHour:           s.DefaultStartHour,
		EndHour:             s.DefaultEndHour,
		SlotDurationMinutes: s.DefaultSlotDurationMinutes,
	}
}

// Load читает TOML файл, затем .env (если есть) и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "spa-booking-service",
		},
		Redis: RedisConfig{GridTTLSec: 60},
		Kafka: KafkaConfig{Topic: "spa.appointments", WriteTimeoutSec: 5},
		Scheduling: SchedulingConfig{
			Timezone:                   "UTC",
			DefaultStartHour:           domain.DefaultStartHour,
			DefaultEndHour:             domain.DefaultEndHour,
			DefaultSlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			MinBookableMinutes:         domain.DefaultMinBookableMinutes,
		},
		StaffService:   IntegrationConfig{Timeout: 5},
		CatalogService: IntegrationConfig{Timeout: 5},
		ClientService:  IntegrationConfig{Timeout: 5},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitBrokers(v)
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate отклоняет невозможные значения при старте
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	if err := validateWindow("scheduling", ViewConfig{
		StartHour:           c.Scheduling.DefaultStartHour,
		EndHour:             c.Scheduling.DefaultEndHour,
		SlotDurationMinutes: c.Scheduling.DefaultSlotDurationMinutes,
	}); err != nil {
		return err
	}
	for name, view := range c.Scheduling.Views {
		if !domain.GridView(name).IsValid() {
			return fmt.Errorf("%w: unknown view %q", ErrInvalidConfig, name)
		}
		if err := validateWindow("scheduling.views."+name, view); err != nil {
			return err
		}
	}
	if c.Scheduling.MinBookableMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.min_bookable_minutes must be positive", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return fmt.Errorf("%w: kafka.brokers and kafka.topic are required when kafka is enabled", ErrInvalidConfig)
	}
	return nil
}

func validateWindow(section string, v ViewConfig) error {
	if v.StartHour < 0 || v.EndHour > 24 || v.StartHour >= v.EndHour {
		return fmt.Errorf("%w: %s hours %d-%d", ErrInvalidConfig, section, v.StartHour, v.EndHour)
	}
	if !domain.IsAllowedSlotDuration(v.SlotDurationMinutes) {
		return fmt.Errorf("%w: %s slot duration %d is not allowed", ErrInvalidConfig, section, v.SlotDurationMinutes)
	}
	return nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
