// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fmt"

	"romamo/ibkr-flex/internal/common"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
)

// BaseParser provides the logger plumbing shared by parser implementations.
//
// Parsers embed BaseParser:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser instance with the provided logger.
// If logger is nil, a default logger will be used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV exports the records of resp as CSV files in dir using the
// shared writer, and returns the paths written.
func (b *BaseParser) WriteToCSV(resp *models.QueryResponse, dir string, delimiter rune) ([]string, error) {
	if resp == nil {
		return nil, fmt.Errorf("cannot write nil report to CSV")
	}
	b.logger.Info("Writing report to CSV using common writer",
		logging.F(logging.FieldOutputFile, dir),
		logging.F(logging.FieldCount, resp.TradeCount()+resp.CashTransactionCount()))

	return common.NewCSVWriter(b.logger, delimiter).WriteAll(resp, dir)
}
