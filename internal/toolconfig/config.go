// Package toolconfig loads the CLI's optional YAML configuration: default
// serial port, session timeouts, and the default codeplug output path.
// All settings are optional and CLI flags always take precedence over a
// loaded config value.
package toolconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is the tool-level configuration.
type Config struct {
	Port            string        `mapstructure:"port"`
	OutputPath      string        `mapstructure:"output_path"`
	RetryWindow     time.Duration `mapstructure:"retry_window"`
	SessionDeadline time.Duration `mapstructure:"session_deadline"`
	LogLevel        string        `mapstructure:"log_level"`
}

// Load reads configuration from configFile (or the default search path if
// empty) and environment variables prefixed RT5D_. A missing config file
// is not an error; defaults apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("rt5d")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/rt5d")
	}

	v.SetEnvPrefix("RT5D")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file: defaults and environment apply
		} else if os.IsNotExist(err) {
			// explicitly named file doesn't exist: also fine
		} else {
			return nil, fmt.Errorf("toolconfig: reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("toolconfig: unmarshal: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("toolconfig: %w", err)
	}

	return &cfg, nil
}

// Defaults returns the configuration's documented defaults, with no file
// or environment overlay. Used as a last-resort fallback when Load itself
// fails validation.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_path", "rt5d_config.json")
	v.SetDefault("retry_window", "1s")
	v.SetDefault("session_deadline", "120s")
	v.SetDefault("log_level", "info")
}

func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	if cfg.RetryWindow <= 0 {
		return fmt.Errorf("retry_window must be positive")
	}
	if cfg.SessionDeadline <= 0 {
		return fmt.Errorf("session_deadline must be positive")
	}
	return nil
}
