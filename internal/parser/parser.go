package parser

import (
	"io"

	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
)

// Parser turns a Flex Query report into a record tree.
type Parser interface {
	// Parse reads a complete report from r. A document whose root is not a
	// Flex Query response yields a *flexerror.InvalidFormatError and a nil
	// response.
	Parse(r io.Reader) (*models.QueryResponse, error)

	// ParseFile parses the report stored at path.
	ParseFile(path string) (*models.QueryResponse, error)

	// ValidateFormat reports whether r looks like a Flex Query response,
	// without building records.
	ValidateFormat(r io.Reader) (bool, error)
}

// LoggerConfigurable is implemented by components whose logger can be
// replaced after construction.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// CSVExporter writes a parsed report as CSV files.
type CSVExporter interface {
	WriteToCSV(resp *models.QueryResponse, dir string, delimiter rune) ([]string, error)
}

// FullParser combines parsing, CSV export and logger configuration.
type FullParser interface {
	Parser
	CSVExporter
	LoggerConfigurable
}
