// Package root contains the root command for the application
package root

import (
	"fmt"

	"romamo/ibkr-flex/internal/config"
	"romamo/ibkr-flex/internal/container"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	Validate  bool
	LogLevel  string
	LogFormat string
	Delimiter string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration loaded before any subcommand runs.
	AppConfig *config.Config

	// AppContainer holds the dependencies built from AppConfig.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ibkr-flex",
		Short: "A CLI tool to download and parse Interactive Brokers Flex Query reports.",
		Long: `ibkr-flex downloads Flex Query reports from the Interactive Brokers
Flex Web Service and turns them into typed records, YAML, JSON or CSV.

The token and query ID are read from flags, from IBKR_FLEX_TOKEN and
IBKR_FLEX_QUERY_ID (also via a .env file) or from config.yaml.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ibkr-flex!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: initialize,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (- for stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before parsing")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Delimiter, "delimiter", "", "CSV delimiter")
}

// initialize loads .env and the configuration, applies flag overrides and
// builds the dependency container.
func initialize(cmd *cobra.Command, args []string) error {
	envFile, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if err := ApplyFlagOverrides(cfg, SharedFlags); err != nil {
		return err
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	if envFile != "" {
		Log.WithField(logging.FieldFile, envFile).Debug("Loaded environment file")
		if err := validation.CheckSecretFile(envFile); err != nil {
			Log.WithError(err).Warn("Environment file may expose the Flex token")
		}
	}

	c, err := container.NewContainer(cfg, container.WithLogger(logging.NewLogrusAdapterFromLogger(Log)))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

// ApplyFlagOverrides copies non-empty persistent flag values onto cfg and
// validates the result.
func ApplyFlagOverrides(cfg *config.Config, flags CommonFlags) error {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.Delimiter != "" {
		cfg.CSV.Delimiter = flags.Delimiter
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetContainer returns the application container, or nil before the root
// command initialized it.
func GetContainer() *container.Container {
	return AppContainer
}
