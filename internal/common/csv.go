// Package common provides the CSV export shared by the commands and parsers.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"romamo/ibkr-flex/internal/fileutils"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
)

// Output file names written by WriteAll.
const (
	TradesFile           = "trades.csv"
	CashTransactionsFile = "cash_transactions.csv"
	CashReportFile       = "cash_report.csv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// CSVWriter exports report records as delimited text.
type CSVWriter struct {
	logger    logging.Logger
	delimiter rune
}

// NewCSVWriter returns a writer using delimiter. A zero delimiter selects
// DefaultDelimiter and a nil logger the default logrus adapter.
func NewCSVWriter(logger logging.Logger, delimiter rune) *CSVWriter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVWriter{logger: logger, delimiter: delimiter}
}

// Delimiter returns the configured field separator.
func (w *CSVWriter) Delimiter() rune {
	return w.delimiter
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger.WithField(logging.FieldFile, filePath).Debug("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Debug("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

func (w *CSVWriter) marshal(out io.Writer, rows interface{}) error {
	csvWriter := csv.NewWriter(out)
	csvWriter.Comma = w.delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTrades writes one row per trade of every statement in resp.
func (w *CSVWriter) WriteTrades(out io.Writer, resp *models.QueryResponse) error {
	rows := []TradeRow{}
	for _, s := range resp.FlexStatements {
		for _, t := range s.Trades {
			rows = append(rows, NewTradeRow(t))
		}
	}
	return w.marshal(out, rows)
}

// WriteCashTransactions writes one row per cash transaction.
func (w *CSVWriter) WriteCashTransactions(out io.Writer, resp *models.QueryResponse) error {
	rows := []CashTransactionRow{}
	for _, s := range resp.FlexStatements {
		for _, c := range s.CashTransactions {
			rows = append(rows, NewCashTransactionRow(c))
		}
	}
	return w.marshal(out, rows)
}

// WriteCashReport writes one row per cash report currency line.
func (w *CSVWriter) WriteCashReport(out io.Writer, resp *models.QueryResponse) error {
	rows := []CashReportRow{}
	for _, s := range resp.FlexStatements {
		for _, r := range s.CashReport {
			rows = append(rows, NewCashReportRow(r))
		}
	}
	return w.marshal(out, rows)
}

// WriteAll writes trades, cash transactions and the cash report of resp into
// dir, replacing existing files atomically. It returns the written paths.
func (w *CSVWriter) WriteAll(resp *models.QueryResponse, dir string) ([]string, error) {
	if resp == nil {
		return nil, fmt.Errorf("cannot write nil report to CSV")
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}

	outputs := []struct {
		name  string
		write func(io.Writer, *models.QueryResponse) error
	}{
		{TradesFile, w.WriteTrades},
		{CashTransactionsFile, w.WriteCashTransactions},
		{CashReportFile, w.WriteCashReport},
	}

	var written []string
	for _, o := range outputs {
		var buf bytes.Buffer
		if err := o.write(&buf, resp); err != nil {
			return written, fmt.Errorf("%s: %w", o.name, err)
		}
		path := filepath.Join(dir, o.name)
		if err := fileutils.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
			return written, err
		}
		w.logger.Info("Wrote CSV file",
			logging.F(logging.FieldOutputFile, path),
			logging.F(logging.FieldDelimiter, string(w.delimiter)))
		written = append(written, path)
	}
	return written, nil
}
