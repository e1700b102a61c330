// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings.
type Config struct {
	AppHost    string
	AppPort    string
	LogLevel   string
	StaticDir  string
	LogTargets []string
	Debug      bool
	Postgres   PostgresConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	JWTSecret  string
	JWTExpiry  time.Duration
}

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
	QueryTimeout time.Duration
}

// DSN returns the pgx connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// RedisConfig holds the user cache settings. An empty Host disables the cache.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	UserTTL      time.Duration
}

// Enabled reports whether a Redis host is configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

// Addr returns host:port.
func (r RedisConfig) Addr() string { return fmt.Sprintf("%s:%d", r.Host, r.Port) }

// KafkaConfig holds the audit publisher settings. No brokers disables publishing.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// Load reads the env file at path (a missing file is ignored) and
// builds a Config from the environment. Malformed numbers are collected
// and returned together.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var errs []string
	cfg := &Config{
		AppHost:   getEnv("APP_HOST", "0.0.0.0"),
		AppPort:   getEnv("APP_PORT", "3000"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		StaticDir: getEnv("STATIC_DIR", "./frontend/public"),
		Postgres: PostgresConfig{
			Host:         getEnv("POSTGRES_HOST", "localhost"),
			Port:         getEnvInt("POSTGRES_PORT", 5432, &errs),
			User:         getEnv("POSTGRES_USER", "user"),
			Password:     getEnv("POSTGRES_PASSWORD", "password"),
			DB:           getEnv("POSTGRES_DB", "quizcraft"),
			MaxOpenConns: getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16, &errs),
			MaxIdleConns: getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8, &errs),
			QueryTimeout: getEnvSeconds("POSTGRES_QUERY_TIMEOUT_SECOND", 5, &errs),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", ""),
			Port:         getEnvInt("REDIS_PORT", 6379, &errs),
			DB:           getEnvInt("REDIS_DB", 0, &errs),
			Password:     getEnv("REDIS_PASSWORD", ""),
			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10, &errs),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2, &errs),
			UserTTL:      getEnvSeconds("REDIS_USER_TTL_SECOND", 300, &errs),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(getEnv("KAFKA_BROKERS", "")),
			AuditTopic: getEnv("KAFKA_AUDIT_TOPIC", "quizcraft.audit"),
		},
		JWTSecret: getEnv("JWT_SECRET_KEY", ""),
		JWTExpiry: getEnvSeconds("JWT_EXP_SECOND", 3600, &errs),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n  %s", strings.Join(errs, "\n  "))
	}
	return cfg, nil
}

// Validate fails on settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if p, err := strconv.Atoi(c.AppPort); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.AppPort))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXP_SECOND must be positive"))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]string) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got %q", key, raw))
		return defaultValue
	}
	return v
}

func getEnvSeconds(key string, defaultValue int, errs *[]string) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue, errs)) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
