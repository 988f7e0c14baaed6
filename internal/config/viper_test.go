package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvVars = []string{
	"IBKR_LOG_LEVEL",
	"IBKR_LOG_FORMAT",
	"IBKR_FLEX_TOKEN",
	"IBKR_FLEX_QUERY_ID",
	"IBKR_FLEX_BASE_URL",
	"IBKR_FLEX_USER_AGENT",
	"IBKR_FLEX_MAX_RETRIES",
	"IBKR_FLEX_RETRY_INTERVAL_SECONDS",
	"IBKR_FLEX_TIMEOUT_SECONDS",
	"IBKR_CSV_DELIMITER",
}

// clearTestEnvVars unsets the configuration variables for the duration of t.
func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, envVar := range testEnvVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}

// chdir switches to dir for the duration of t.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func validConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Flex.BaseURL = "https://example.invalid"
	c.Flex.MaxRetries = 10
	c.Flex.RetryIntervalSeconds = 10
	c.Flex.TimeoutSeconds = 30
	c.CSV.Delimiter = ","
	return c
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "", config.Flex.Token)
	assert.Equal(t, "", config.Flex.QueryID)
	assert.Equal(t, "https://ndcdyn.interactivebrokers.com/AccountManagement/FlexWebService", config.Flex.BaseURL)
	assert.Equal(t, "go/ibkr-flex", config.Flex.UserAgent)
	assert.Equal(t, 10, config.Flex.MaxRetries)
	assert.Equal(t, 10*time.Second, config.RetryInterval())
	assert.Equal(t, 30*time.Second, config.Timeout())
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.DelimiterRune())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	env := map[string]string{
		"IBKR_LOG_LEVEL":                   "debug",
		"IBKR_LOG_FORMAT":                  "json",
		"IBKR_FLEX_TOKEN":                  "secret-token",
		"IBKR_FLEX_QUERY_ID":               "123456",
		"IBKR_FLEX_MAX_RETRIES":            "3",
		"IBKR_FLEX_RETRY_INTERVAL_SECONDS": "5",
		"IBKR_CSV_DELIMITER":               ";",
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "secret-token", config.Flex.Token)
	assert.Equal(t, "123456", config.Flex.QueryID)
	assert.Equal(t, 3, config.Flex.MaxRetries)
	assert.Equal(t, 5*time.Second, config.RetryInterval())
	assert.Equal(t, ';', config.DelimiterRune())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
flex:
  query_id: "987"
  max_retries: 20
  timeout_seconds: 60
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0o644))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "987", config.Flex.QueryID)
	assert.Equal(t, 20, config.Flex.MaxRetries)
	assert.Equal(t, time.Minute, config.Timeout())
	assert.Equal(t, "|", config.CSV.Delimiter)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
flex:
  query_id: "from-file"
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0o644))
	t.Setenv("IBKR_LOG_LEVEL", "error")
	t.Setenv("IBKR_FLEX_QUERY_ID", "from-env")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "from-env", config.Flex.QueryID)
	assert.Equal(t, "|", config.CSV.Delimiter)
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("IBKR_LOG_FORMAT", "xml")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "invalid" }, "invalid log format"},
		{"invalid CSV delimiter", func(c *Config) { c.CSV.Delimiter = "abc" }, "CSV delimiter must be a single character"},
		{"empty CSV delimiter", func(c *Config) { c.CSV.Delimiter = "" }, "CSV delimiter must be a single character"},
		{"zero max retries", func(c *Config) { c.Flex.MaxRetries = 0 }, "flex.max_retries must be between 1 and 100"},
		{"negative retry interval", func(c *Config) { c.Flex.RetryIntervalSeconds = -1 }, "flex.retry_interval_seconds must be between 0 and 600"},
		{"zero timeout", func(c *Config) { c.Flex.TimeoutSeconds = 0 }, "flex.timeout_seconds must be between 1 and 300"},
		{"empty base url", func(c *Config) { c.Flex.BaseURL = "" }, "flex.base_url must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(validConfig()))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := validConfig()
	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	config.Log.Level = "debug"
	config.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	config.Log.Level = "nonsense"
	logger = ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestConfig_Validate(t *testing.T) {
	config := validConfig()
	require.NoError(t, config.Validate())

	config.CSV.Delimiter = ";;"
	assert.Error(t, config.Validate())
}
