package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the sprite tools.
const EnvPrefix = "POKESPRITE_"

// ParseEnv loads configuration from environment variables.
//
// Fields whose variables are unset keep their current value, so callers can
// seed defaults or file values first and let the environment override them.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
