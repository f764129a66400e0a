package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config: конфигурация сервиса целиком.
type Config struct {
	Database     DBConfig           `yaml:"database"`
	Server       ServerConfig       `yaml:"server"`
	Scheduling   SchedulingConfig   `yaml:"scheduling"`
	Notification NotificationConfig `yaml:"notification"`
	Log          LogConfig          `yaml:"log"`
}

type DBConfig struct {
	// postgres | sqlite
	Driver          string `yaml:"driver"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	SSLMode         string `yaml:"sslmode"`
	TimeZone        string `yaml:"timezone"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifeTime int    `yaml:"conn_max_lifetime_min"` // минут
	// Путь к файлу для sqlite (":memory:": в памяти).
	Path string `yaml:"path"`
}

type ServerConfig struct {
	GRPCAddr        string  `yaml:"grpc_addr"`
	HTTPAddr        string  `yaml:"http_addr"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

type SchedulingConfig struct {
	SlotStepMinutes      int  `yaml:"slot_step_minutes"`
	RescheduleTTLHours   int  `yaml:"reschedule_ttl_hours"`
	SweepIntervalMin     int  `yaml:"sweep_interval_min"`
	RequirePaymentSignal bool `yaml:"require_payment_signal"`
}

// RescheduleTTL: срок жизни токена переноса.
func (c SchedulingConfig) RescheduleTTL() time.Duration {
	return time.Duration(c.RescheduleTTLHours) * time.Hour
}

// SweepInterval: период фонового досоздания занятий.
func (c SchedulingConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMin) * time.Minute
}

type NotificationConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Пустой путь: писать только в stderr.
	File string `yaml:"file"`
}

// Default возвращает конфиг с дефолтами, которые потом перекрываются файлом
// и переменными окружения.
func Default() *Config {
	return &Config{
		Database: DBConfig{
			Driver:          "postgres",
			Host:            "postgres",
			Port:            5432,
			User:            "booking",
			Password:        "booking",
			Name:            "booking_db",
			SSLMode:         "disable",
			TimeZone:        "Europe/Moscow",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifeTime: 30,
		},
		Server: ServerConfig{
			GRPCAddr:        ":50051",
			HTTPAddr:        ":8080",
			RateLimitPerSec: 10,
			RateLimitBurst:  5,
		},
		Scheduling: SchedulingConfig{
			SlotStepMinutes:    15,
			RescheduleTTLHours: 72,
			SweepIntervalMin:   60,
		},
		Notification: NotificationConfig{
			Workers:   2,
			QueueSize: 256,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load читает YAML (если path не пустой), подхватывает .env и применяет
// переменные окружения поверх.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env необязателен: в контейнере переменные приходят из окружения.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	db := &cfg.Database
	db.Driver = getEnv("DB_DRIVER", db.Driver)
	db.Host = getEnv("DB_HOST", db.Host)
	db.User = getEnv("DB_USER", db.User)
	db.Password = getEnv("DB_PASSWORD", db.Password)
	db.Name = getEnv("DB_NAME", db.Name)
	db.SSLMode = getEnv("DB_SSLMODE", db.SSLMode)
	db.TimeZone = getEnv("DB_TIMEZONE", db.TimeZone)
	db.Path = getEnv("DB_PATH", db.Path)
	db.Port = getEnvInt("DB_PORT", db.Port)
	db.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", db.MaxOpenConns)
	db.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", db.MaxIdleConns)
	db.ConnMaxLifeTime = getEnvInt("DB_CONN_MAX_LIFETIME_MIN", db.ConnMaxLifeTime)

	cfg.Server.GRPCAddr = getEnv("GRPC_ADDR", cfg.Server.GRPCAddr)
	cfg.Server.HTTPAddr = getEnv("HTTP_ADDR", cfg.Server.HTTPAddr)

	cfg.Scheduling.SlotStepMinutes = getEnvInt("SLOT_STEP_MINUTES", cfg.Scheduling.SlotStepMinutes)
	cfg.Scheduling.RescheduleTTLHours = getEnvInt("RESCHEDULE_TTL_HOURS", cfg.Scheduling.RescheduleTTLHours)
	cfg.Scheduling.SweepIntervalMin = getEnvInt("SWEEP_INTERVAL_MIN", cfg.Scheduling.SweepIntervalMin)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
}

// минимальная валидация
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("invalid DB config: sqlite requires path")
		}
	default:
		return fmt.Errorf("invalid DB config: unsupported driver %q", c.Database.Driver)
	}
	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("invalid scheduling config: slot_step_minutes must be positive")
	}
	if c.Scheduling.RescheduleTTLHours <= 0 {
		return fmt.Errorf("invalid scheduling config: reschedule_ttl_hours must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
