// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by InitializeConfig,
// e.g. IBKR_FLEX_TOKEN for flex.token.
const EnvPrefix = "IBKR"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Flex struct {
		Token                string `mapstructure:"token" yaml:"-"` // Never serialize the token
		QueryID              string `mapstructure:"query_id" yaml:"query_id"`
		BaseURL              string `mapstructure:"base_url" yaml:"base_url"`
		UserAgent            string `mapstructure:"user_agent" yaml:"user_agent"`
		MaxRetries           int    `mapstructure:"max_retries" yaml:"max_retries"`
		RetryIntervalSeconds int    `mapstructure:"retry_interval_seconds" yaml:"retry_interval_seconds"`
		TimeoutSeconds       int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"flex" yaml:"flex"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// RetryInterval returns the wait between download attempts.
func (c *Config) RetryInterval() time.Duration {
	return time.Duration(c.Flex.RetryIntervalSeconds) * time.Second
}

// Timeout returns the HTTP timeout of a single Flex Web Service call.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Flex.TimeoutSeconds) * time.Second
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ibkr-flex")
	v.AddConfigPath(".ibkr-flex")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("flex.token", "")
	v.SetDefault("flex.query_id", "")
	v.SetDefault("flex.base_url", "https://ndcdyn.interactivebrokers.com/AccountManagement/FlexWebService")
	v.SetDefault("flex.user_agent", "go/ibkr-flex")
	v.SetDefault("flex.max_retries", 10)
	v.SetDefault("flex.retry_interval_seconds", 10)
	v.SetDefault("flex.timeout_seconds", 30)

	v.SetDefault("csv.delimiter", ",")
}

// Validate checks the configuration values, e.g. after command-line
// overrides were applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Flex.MaxRetries < 1 || config.Flex.MaxRetries > 100 {
		return fmt.Errorf("flex.max_retries must be between 1 and 100, got: %d", config.Flex.MaxRetries)
	}

	if config.Flex.RetryIntervalSeconds < 0 || config.Flex.RetryIntervalSeconds > 600 {
		return fmt.Errorf("flex.retry_interval_seconds must be between 0 and 600, got: %d", config.Flex.RetryIntervalSeconds)
	}

	if config.Flex.TimeoutSeconds < 1 || config.Flex.TimeoutSeconds > 300 {
		return fmt.Errorf("flex.timeout_seconds must be between 1 and 300, got: %d", config.Flex.TimeoutSeconds)
	}

	if config.Flex.BaseURL == "" {
		return fmt.Errorf("flex.base_url must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
