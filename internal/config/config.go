// Package config loads application configuration from the environment.
package config

import "fmt"

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	GinMode string
}

// LoadFromEnv reads every configuration section from environment variables,
// falling back to defaults suitable for local development.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", "release"),
	}
}

// Validate checks every section and fails on the first problem.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q (must be debug, release or test)", c.GinMode)
	}
	return nil
}
