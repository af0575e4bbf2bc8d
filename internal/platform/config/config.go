package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidPort         = errors.New("config: invalid PORT number")
	errBodyLimitOutOfRange = errors.New("config: MAX_BODY_BYTES must be 1KiB-64MiB")
	errInvalidShutdown     = errors.New("config: SHUTDOWN_TIMEOUT must be a positive duration")
)

const (
	minBodyBytes = 1 << 10
	maxBodyBytes = 64 << 20
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port            string
	LogLevel        string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "ERROR"),
		MaxBodyBytes:    int64(getEnvAsInt("MAX_BODY_BYTES", 5<<20)),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		MetricsEnabled:  getEnvAsBool("METRICS_ENABLED", true),
	}

	return cfg, cfg.validate()
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.MaxBodyBytes < minBodyBytes || c.MaxBodyBytes > maxBodyBytes {
		return fmt.Errorf("%w: got %d", errBodyLimitOutOfRange, c.MaxBodyBytes)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: got %s", errInvalidShutdown, c.ShutdownTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}

// getEnvAsDuration returns an invalid (zero) duration for unparseable values
// so validate reports them instead of silently using the fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return v
}
