// Package common contains shared functionality for command handlers
package common

import (
	"bytes"
	"fmt"
	"io"

	"romamo/ibkr-flex/internal/fileutils"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
	"romamo/ibkr-flex/internal/parser"
)

// ReadReport reads the report at inputFile (stdin when it is "-") and parses
// it with p. When validate is set the document is checked first and a
// document that is not a Flex Query response is rejected before parsing.
func ReadReport(p parser.Parser, inputFile string, stdin io.Reader, validate bool, log logging.Logger) (*models.QueryResponse, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("an input file is required (use --input, or - for stdin)")
	}

	data, err := fileutils.ReadInput(inputFile, stdin)
	if err != nil {
		return nil, err
	}

	if validate {
		log.Info("Validating format...", logging.F(logging.FieldInputFile, inputFile))
		valid, err := p.ValidateFormat(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, fmt.Errorf("%s is not a Flex Query report", inputFile)
		}
		log.Info("Validation successful.")
	}

	resp, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", inputFile, err)
	}

	log.Info("Parsed Flex Query report",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F("statements", len(resp.FlexStatements)),
		logging.F("trades", resp.TradeCount()),
		logging.F("cash_transactions", resp.CashTransactionCount()))
	return resp, nil
}
