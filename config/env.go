// Package config loads handler settings from the environment.
//
// The destination address is fixed at compile time; only diagnostics are
// configurable.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the diagnostic settings of one handler invocation.
type Config struct {
	// Debug enables diagnostic output. Always on in builds tagged "debug".
	Debug bool `env:"VAELSTROM_URL_HANDLER_DEBUG"`
	// LogFile receives diagnostics when set, appended to.
	LogFile string `env:"VAELSTROM_URL_HANDLER_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config and applies the build-time debug default.
func Load() (Config, error) {
	var cfg Config
	err := ParseEnv(&cfg)
	cfg.Debug = cfg.Debug || DebugBuild
	return cfg, err
}
