// Package config loads process configuration from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
)

// Store kinds
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds the settings shared by the server and the offline commands
type Config struct {
	GRPCPort     int    `env:"SAVEDATA_GRPC_PORT" envDefault:"50051"`
	Store        string `env:"SAVEDATA_STORE" envDefault:"redis"`
	RedisAddr    string `env:"SAVEDATA_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath   string `env:"SAVEDATA_SQLITE_PATH" envDefault:"savedata.db"`
	WriteVersion int32  `env:"SAVEDATA_WRITE_VERSION" envDefault:"0"`
	Capacity     int    `env:"SAVEDATA_CAPACITY" envDefault:"8"`
	LogLevel     string `env:"SAVEDATA_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config. Callers validate after applying
// their own overrides, with Validate or ValidateCodec.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

// Validate checks every setting the server needs
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	errors.ValidateEnum("Store", c.Store, []string{StoreRedis, StoreSQLite}, vb)
	if c.Store == StoreRedis && c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		vb.RequiredField("SQLitePath")
	}
	c.validateCodec(vb)

	return vb.Build()
}

// ValidateCodec checks only the settings the offline file commands use
func (c *Config) ValidateCodec() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	c.validateCodec(vb)

	return vb.Build()
}

func (c *Config) validateCodec(vb *errors.ValidationBuilder) {
	if c.WriteVersion < 0 {
		vb.Fieldf("WriteVersion", "must not be negative, got %d", c.WriteVersion)
	}
	if c.Capacity < accessory.LegacyCapacity {
		vb.Fieldf("Capacity", "must be at least %d", accessory.LegacyCapacity)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
}

// SchemaVersion returns the marker written on save
func (c *Config) SchemaVersion() accessory.SchemaVersion {
	return accessory.SchemaVersion(c.WriteVersion)
}

// SlogLevel returns the configured log level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
