// Package config provides Viper-based hierarchical configuration
// management: defaults, then an optional config file, then CSVRAW_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"csvraw/internal/models"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Database struct {
		Path     string `mapstructure:"path" yaml:"path"`
		PoolSize int    `mapstructure:"pool_size" yaml:"pool_size"`
	} `mapstructure:"database" yaml:"database"`

	Counter struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"counter" yaml:"counter"`

	Depository struct {
		Beneficiary  string `mapstructure:"beneficiary" yaml:"beneficiary"`
		HeaderPrefix string `mapstructure:"header_prefix" yaml:"header_prefix"`
	} `mapstructure:"depository" yaml:"depository"`

	Input struct {
		ExtraColumns []string `mapstructure:"extra_columns" yaml:"extra_columns"`
	} `mapstructure:"input" yaml:"input"`
}

// Load initializes Viper configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.csvraw")
	v.AddConfigPath(".csvraw")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CSVRAW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("database.path", "data/csvraw.db")
	v.SetDefault("database.pool_size", 4)
	v.SetDefault("counter.file", "data/counter.json")

	v.SetDefault("depository.beneficiary", models.DefaultBeneficiary)
	v.SetDefault("depository.header_prefix", models.DefaultHeaderPrefix)

	v.SetDefault("input.extra_columns", []string{})
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Data.Directory == "" {
		return fmt.Errorf("data.directory must not be empty")
	}
	if config.Depository.Beneficiary == "" {
		return fmt.Errorf("depository.beneficiary must not be empty")
	}
	if config.Depository.HeaderPrefix == "" {
		return fmt.Errorf("depository.header_prefix must not be empty")
	}
	return nil
}
