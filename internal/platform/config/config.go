// Package config loads the process service configuration from layered YAML
// profiles and APP_* environment overrides, then validates it. Field rules
// live in validate struct tags next to the koanf keys they check.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
//
// RequestTimeout bounds handler work and must be shorter than WriteTimeout,
// so a slow request still gets its 504 before the connection is cut.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"             validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"gt=0,ltfield=WriteTimeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// DatabaseConfig holds relational store settings.
//
// Driver selects the SQL dialect: "sqlite" (pure-Go, used locally and in
// tests) or "postgres". DSN is passed to the driver unchanged and is masked
// whenever the config is logged.
type DatabaseConfig struct {
	Driver          string               `koanf:"driver"            validate:"oneof=sqlite postgres"`
	DSN             string               `koanf:"dsn"               validate:"required"                    masq:"secret"`
	MaxOpenConns    int                  `koanf:"max_open_conns"    validate:"min=1"`
	MaxIdleConns    int                  `koanf:"max_idle_conns"    validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration        `koanf:"conn_max_lifetime" validate:"gte=0"`
	AutoMigrate     bool                 `koanf:"auto_migrate"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds the settings of the breaker guarding database
// calls. A MaxFailures of zero turns the breaker off.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"gte=0"`
	Timeout       time.Duration `koanf:"timeout"         validate:"gte=0"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"gte=0"`
}

// TelemetryConfig holds OpenTelemetry settings. Its fields are only checked
// when Enabled is set.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
