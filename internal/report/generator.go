// Package report renders parsed Flex Query reports for display.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"romamo/ibkr-flex/internal/currencyutils"
	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
)

// Supported formats.
const (
	FormatSummary = "summary"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
)

// Formats lists the supported formats.
var Formats = []string{FormatSummary, FormatYAML, FormatJSON}

// ReportGenerator renders a QueryResponse as a summary, YAML or JSON.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{logger: logger.WithField("component", "ReportGenerator")}
}

// GenerateReport renders resp in the specified format. It returns an error
// if rendering fails or the format is unsupported.
func (g *ReportGenerator) GenerateReport(resp *models.QueryResponse, format string) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("cannot render nil report")
	}
	switch format {
	case FormatSummary:
		var buf bytes.Buffer
		writeSummary(&buf, resp)
		return buf.Bytes(), nil
	case FormatJSON:
		return g.generateJSONReport(resp)
	case FormatYAML:
		return g.generateYAMLReport(resp)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(resp *models.QueryResponse) ([]byte, error) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *ReportGenerator) generateYAMLReport(resp *models.QueryResponse) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(resp); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSummary prints the query name and, per statement, the record counts,
// cash movements by currency and the most recent trade.
func writeSummary(w io.Writer, resp *models.QueryResponse) {
	fmt.Fprintf(w, "Query: %s (%d statements)\n", value(resp.QueryName), len(resp.FlexStatements))
	for _, st := range resp.FlexStatements {
		fmt.Fprintf(w, "\nAccount %s, %s to %s\n", value(st.AccountID), date(st.FromDate), date(st.ToDate))
		fmt.Fprintf(w, "  Trades:            %d\n", len(st.Trades))
		fmt.Fprintf(w, "  Cash transactions: %d\n", len(st.CashTransactions))
		fmt.Fprintf(w, "  Cash report rows:  %d\n", len(st.CashReport))

		for _, total := range cashByCurrency(st.CashTransactions) {
			fmt.Fprintf(w, "  Cash movements:    %s\n", currencyutils.FormatAmount(&total.amount, total.currency))
		}

		if n := len(st.Trades); n > 0 {
			last := st.Trades[n-1]
			quantity := currencyutils.FormatDecimal(last.Quantity)
			if quantity == "" {
				quantity = "-"
			}
			currency := ""
			if last.Currency != nil {
				currency = *last.Currency
			}
			fmt.Fprintf(w, "  Last trade:        %s %s %s %s @ %s\n",
				date(last.TradeDate), enum(last.BuySell), quantity, value(last.Symbol),
				currencyutils.FormatAmount(last.TradePrice, currency))
		}
	}
}

type currencyTotal struct {
	currency string
	amount   decimal.Decimal
}

func cashByCurrency(txs []models.CashTransaction) []currencyTotal {
	amounts := map[string][]*decimal.Decimal{}
	for _, tx := range txs {
		if tx.Amount == nil || tx.Currency == nil {
			continue
		}
		amounts[*tx.Currency] = append(amounts[*tx.Currency], tx.Amount)
	}
	totals := make([]currencyTotal, 0, len(amounts))
	for currency, list := range amounts {
		totals = append(totals, currencyTotal{currency: currency, amount: currencyutils.Sum(list...)})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].currency < totals[j].currency })
	return totals
}

func value(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func enum[E ~string](e *E) string {
	if e == nil {
		return "-"
	}
	return string(*e)
}

func date(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}
