package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime options for the sigbox CLI. Command-line flags
// override these values.
type Config struct {
	Home       string `env:"SIGBOX_HOME"`
	LogLevel   string `env:"SIGBOX_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Encoding   string `env:"SIGBOX_ENCODING" default:"hex" validate:"oneof=hex base64 raw"`
	ScryptLogN int    `env:"SIGBOX_SCRYPT_LOGN" default:"15" validate:"min=10,max=20"`
}

// Load reads Config from the environment and fills in the home directory.
// The result is not validated: callers apply their overrides first and then
// call Validate.
func Load() (Config, error) {
	var cfg Config
	if err := FromEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".sigbox")
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation of config failed: %w", err)
	}
	return nil
}
