// Package container provides dependency injection for the ibkr-flex application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"romamo/ibkr-flex/internal/config"
	"romamo/ibkr-flex/internal/flexclient"
	"romamo/ibkr-flex/internal/flexparser"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/parser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config
	client *flexclient.Client
	parser parser.FullParser
}

// Option customizes a Container during construction.
type Option func(*options)

type options struct {
	logger logging.Logger
	sleep  flexclient.SleepFunc
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSleep replaces the wait used between download attempts.
func WithSleep(sleep flexclient.SleepFunc) Option {
	return func(o *options) { o.sleep = sleep }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	client := flexclient.NewClient(flexclient.Config{
		BaseURL:   cfg.Flex.BaseURL,
		UserAgent: cfg.Flex.UserAgent,
		Timeout:   cfg.Timeout(),
		Logger:    logger,
		Sleep:     o.sleep,
	})

	logger.Debug("Container initialized",
		logging.F("base_url", cfg.Flex.BaseURL),
		logging.F(logging.FieldMaxAttempts, cfg.Flex.MaxRetries))

	return &Container{
		logger: logger,
		config: cfg,
		client: client,
		parser: flexparser.NewParser(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetClient returns the Flex Web Service client.
func (c *Container) GetClient() *flexclient.Client {
	return c.client
}

// GetParser returns the report parser.
func (c *Container) GetParser() parser.FullParser {
	return c.parser
}

// DownloadRequest builds a download request for the given credentials and
// period, taking the retry policy from the configuration. Empty token or
// query ID fall back to the configured ones.
func (c *Container) DownloadRequest(token, queryID, fromDate, toDate string) flexclient.DownloadRequest {
	if token == "" {
		token = c.config.Flex.Token
	}
	if queryID == "" {
		queryID = c.config.Flex.QueryID
	}
	return flexclient.DownloadRequest{
		Token:         token,
		QueryID:       queryID,
		MaxRetries:    c.config.Flex.MaxRetries,
		RetryInterval: c.config.RetryInterval(),
		FromDate:      fromDate,
		ToDate:        toDate,
	}
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
