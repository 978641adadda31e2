package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/notification"
)

// Переменные окружения с секретами
const (
	EnvDBPassword     = "DB_PASSWORD"
	EnvMailAPIKey     = "MAIL_API_KEY"
	EnvAdminJWTSecret = "ADMIN_JWT_SECRET"
)

// ResponseReserve запас write_timeout на запись ответа после отправки подтверждения
const ResponseReserve = 2 * time.Second

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrReadConfig возвращается, если не удалось прочитать или разобрать файл конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrLoadEnv возвращается, если .env существует, но не читается
	ErrLoadEnv = errors.New("config: failed to load .env")

	// ErrInvalidConfig возвращается при невалидной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Storage      StorageConfig      `toml:"storage"`
	Database     DatabaseConfig     `toml:"database"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Notification NotificationConfig `toml:"notification"`
	Auth         AuthConfig         `toml:"auth"`
	RateLimit    RateLimitConfig    `toml:"ratelimit"`
	CORS         CORSConfig         `toml:"cors"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"gte=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"gte=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"gte=0"`
}

type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"omitempty,startswith=/"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Driver string `toml:"driver" validate:"oneof=memory postgres"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port" validate:"gte=0,max=65535"`
	User            string `toml:"user"`
	Password        string `toml:"-"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"gte=0"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type CatalogConfig struct {
	SeedFile string `toml:"seed_file"`
}

type NotificationConfig struct {
	Enabled       bool   `toml:"enabled"`
	BackoffUnitMs int    `toml:"backoff_unit_ms" validate:"gte=0"`
	From          string `toml:"from" validate:"omitempty,email"`
	APIURL        string `toml:"api_url" validate:"omitempty,url"`
	Timeout       int    `toml:"timeout" validate:"gte=0"` // секунды
	APIKey        string `toml:"-"`
}

// BackoffUnit возвращает базовую задержку между попытками
func (n NotificationConfig) BackoffUnit() time.Duration {
	return time.Duration(n.BackoffUnitMs) * time.Millisecond
}

// DeliveryBudget худшее время отправки подтверждения со всеми повторами
func (n NotificationConfig) DeliveryBudget() time.Duration {
	return notification.DeliveryBudget(time.Duration(n.Timeout)*time.Second, n.BackoffUnit())
}

type AuthConfig struct {
	Issuer    string `toml:"issuer"`
	JWTSecret string `toml:"-"`
}

type RateLimitConfig struct {
	BookingsPerMinute int `toml:"bookings_per_minute" validate:"gte=0"`
	Burst             int `toml:"burst" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла, секреты берет из окружения (и .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Storage.Driver == StoragePostgres && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database host and dbname are required for postgres storage", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Notification.Enabled && (c.Notification.From == "" || c.Notification.APIURL == "") {
		return fmt.Errorf("%w: notification from and api_url are required when notifications are enabled", ErrInvalidConfig)
	}
	if c.Notification.Enabled {
		if err := c.validateDeliveryBudget(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("%w: %s is not set", ErrInvalidConfig, EnvAdminJWTSecret)
	}

	return nil
}

// validateDeliveryBudget все попытки доставки укладываются в write_timeout с запасом на ответ
func (c *Config) validateDeliveryBudget() error {
	if c.Notification.Timeout <= 0 {
		return fmt.Errorf("%w: notification timeout must be positive when notifications are enabled", ErrInvalidConfig)
	}
	if c.Server.WriteTimeout <= 0 {
		return nil
	}

	budget := c.Notification.DeliveryBudget()
	writeTimeout := time.Duration(c.Server.WriteTimeout) * time.Second
	if budget+ResponseReserve > writeTimeout {
		return fmt.Errorf("%w: notification delivery may take %s, which does not fit server write_timeout %s (reserve %s)",
			ErrInvalidConfig, budget, writeTimeout, ResponseReserve)
	}

	return nil
}

func (c *Config) applyEnv() {
	c.Database.Password = os.Getenv(EnvDBPassword)
	c.Notification.APIKey = os.Getenv(EnvMailAPIKey)
	c.Auth.JWTSecret = os.Getenv(EnvAdminJWTSecret)
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "service-booking"},
		Storage: StorageConfig{Driver: StorageMemory},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Catalog: CatalogConfig{SeedFile: "catalog.yaml"},
		Notification: NotificationConfig{
			BackoffUnitMs: 1000,
			Timeout:       5,
		},
		Auth:      AuthConfig{Issuer: "service-booking"},
		RateLimit: RateLimitConfig{BookingsPerMinute: 10, Burst: 5},
	}
}
