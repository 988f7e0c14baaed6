// Package batch provides functionality for batch processing and aggregation of Flex Query reports
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"romamo/ibkr-flex/internal/logging"
	"romamo/ibkr-flex/internal/models"
	"romamo/ibkr-flex/internal/xmlutils"

	"gopkg.in/xmlpath.v2"
)

// UnknownAccount groups statements without an accountId.
const UnknownAccount = "UNKNOWN"

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// AccountGroup is the merged activity of one account across reports.
type AccountGroup struct {
	AccountID string
	Sources   []string  // base names of the reports that contributed
	DateRange DateRange // union of the statement periods
	Statement models.Statement
}

// ParseFunc parses one report file.
type ParseFunc func(path string) (*models.QueryResponse, error)

// BatchAggregator merges the statements of several reports by account
type BatchAggregator struct {
	logger logging.Logger
}

// NewBatchAggregator creates a new BatchAggregator instance
func NewBatchAggregator(logger logging.Logger) *BatchAggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &BatchAggregator{
		logger: logger,
	}
}

// FindReports returns the XML files directly inside dir, sorted by name.
func FindReports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".xml") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// SelectReports keeps the files whose root element is FlexQueryResponse.
// Other files are logged and skipped without being parsed.
func (ba *BatchAggregator) SelectReports(files []string) []string {
	paths := xmlutils.DefaultFlexXPaths().Report
	rootPath := xmlpath.MustCompile(paths.Root)

	var selected []string
	for _, file := range files {
		logger := ba.logger.WithField(logging.FieldFile, file)
		root, err := xmlutils.LoadXMLFile(file)
		if err != nil {
			logger.WithError(err).Warn("Skipping unreadable XML file")
			continue
		}
		if !rootPath.Exists(root) {
			logger.Warn("Skipping XML file that is not a Flex Query report")
			continue
		}
		accounts, err := xmlutils.ExtractFromXML(root, paths.AccountID)
		if err != nil {
			logger.WithError(err).Warn("Skipping report with unreadable accounts")
			continue
		}
		logger.Debug("Selected report",
			logging.F(logging.FieldAccountID, xmlutils.GetOrEmpty(accounts, 0)),
			logging.F(logging.FieldCount, len(accounts)))
		selected = append(selected, file)
	}
	return selected
}

// Aggregate parses files in order and merges their statements by account.
// Files that fail to parse are logged and skipped; an error is returned
// only when none of the files could be parsed.
//
// Trades and cash transactions repeated across overlapping reports are
// dropped by trade ID and transaction ID. Records without an ID are kept.
// The merged records are sorted chronologically; ties keep report order.
func (ba *BatchAggregator) Aggregate(files []string, parse ParseFunc) ([]AccountGroup, error) {
	groups := make(map[string]*accountState)
	parsed := 0

	for _, file := range files {
		ba.logger.Debug("Processing file", logging.F(logging.FieldFile, filepath.Base(file)))

		resp, err := parse(file)
		if err != nil {
			ba.logger.WithError(err).Error("Failed to parse file",
				logging.F(logging.FieldFile, file))
			continue
		}
		parsed++

		for _, st := range resp.FlexStatements {
			accountID := UnknownAccount
			if st.AccountID != nil && *st.AccountID != "" {
				accountID = *st.AccountID
			}
			state, ok := groups[accountID]
			if !ok {
				state = newAccountState(accountID)
				groups[accountID] = state
			}
			state.add(filepath.Base(file), st)
		}
	}

	if parsed == 0 && len(files) > 0 {
		return nil, fmt.Errorf("none of the %d reports could be parsed", len(files))
	}

	result := make([]AccountGroup, 0, len(groups))
	for _, state := range groups {
		group := state.group()
		ba.logger.Info("Aggregated statements for account",
			logging.F(logging.FieldAccountID, group.AccountID),
			logging.F("trades", len(group.Statement.Trades)),
			logging.F("cash_transactions", len(group.Statement.CashTransactions)),
			logging.F("source_files", strings.Join(group.Sources, ", ")))
		if state.duplicates > 0 {
			ba.logger.Warn("Dropped records repeated across reports",
				logging.F(logging.FieldAccountID, group.AccountID),
				logging.F(logging.FieldCount, state.duplicates))
		}
		result = append(result, group)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].AccountID < result[j].AccountID
	})

	ba.logger.Info("Grouped statements into account groups",
		logging.F("total_files", len(files)),
		logging.F("account_groups", len(result)))
	return result, nil
}

type accountState struct {
	accountID     string
	sources       []string
	dateRange     DateRange
	whenGenerated *time.Time
	trades        []models.Trade
	cash          []models.CashTransaction
	cashReport    []models.CashReportCurrency
	tradeIDs      map[string]bool
	cashIDs       map[string]bool
	cashReportIDs map[string]bool
	duplicates    int
}

func newAccountState(accountID string) *accountState {
	return &accountState{
		accountID:     accountID,
		trades:        []models.Trade{},
		cash:          []models.CashTransaction{},
		tradeIDs:      map[string]bool{},
		cashIDs:       map[string]bool{},
		cashReportIDs: map[string]bool{},
	}
}

func (s *accountState) add(source string, st models.Statement) {
	if len(s.sources) == 0 || s.sources[len(s.sources)-1] != source {
		s.sources = append(s.sources, source)
	}
	s.dateRange = s.dateRange.Merge(statementRange(st))
	if st.WhenGenerated != nil && (s.whenGenerated == nil || st.WhenGenerated.After(*s.whenGenerated)) {
		s.whenGenerated = st.WhenGenerated
	}

	for _, t := range st.Trades {
		if t.TradeID != nil && *t.TradeID != "" {
			if s.tradeIDs[*t.TradeID] {
				s.duplicates++
				continue
			}
			s.tradeIDs[*t.TradeID] = true
		}
		s.trades = append(s.trades, t)
	}
	for _, c := range st.CashTransactions {
		if c.TransactionID != nil && *c.TransactionID != "" {
			if s.cashIDs[*c.TransactionID] {
				s.duplicates++
				continue
			}
			s.cashIDs[*c.TransactionID] = true
		}
		s.cash = append(s.cash, c)
	}
	for _, r := range st.CashReport {
		key := cashReportKey(r)
		if s.cashReportIDs[key] {
			continue
		}
		s.cashReportIDs[key] = true
		s.cashReport = append(s.cashReport, r)
	}
}

func (s *accountState) group() AccountGroup {
	sortTradesChronologically(s.trades)
	sortCashChronologically(s.cash)

	accountID := s.accountID
	st := models.Statement{
		AccountID:        &accountID,
		WhenGenerated:    s.whenGenerated,
		Trades:           s.trades,
		CashTransactions: s.cash,
		CashReport:       s.cashReport,
	}
	if !s.dateRange.Start.IsZero() {
		start := s.dateRange.Start
		st.FromDate = &start
	}
	if !s.dateRange.End.IsZero() {
		end := s.dateRange.End
		st.ToDate = &end
	}
	return AccountGroup{
		AccountID: s.accountID,
		Sources:   s.sources,
		DateRange: s.dateRange,
		Statement: st,
	}
}

func statementRange(st models.Statement) DateRange {
	var dr DateRange
	if st.FromDate != nil {
		dr.Start = *st.FromDate
	}
	if st.ToDate != nil {
		dr.End = *st.ToDate
	}
	return dr
}

func cashReportKey(r models.CashReportCurrency) string {
	return strings.Join([]string{
		deref(r.Currency), deref(r.LevelOfDetail), dateKey(r.FromDate), dateKey(r.ToDate),
	}, "|")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// tradeInstant orders trades by trade date and time. Trades without a date
// sort last.
func tradeInstant(t models.Trade) (time.Time, bool) {
	if t.DateTime != nil {
		return *t.DateTime, true
	}
	if t.TradeDate == nil {
		return time.Time{}, false
	}
	if t.TradeTime != nil {
		return t.TradeTime.On(*t.TradeDate), true
	}
	return *t.TradeDate, true
}

func sortTradesChronologically(trades []models.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		a, okA := tradeInstant(trades[i])
		b, okB := tradeInstant(trades[j])
		if okA != okB {
			return okA
		}
		return a.Before(b)
	})
}

func sortCashChronologically(txs []models.CashTransaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i].DateTime, txs[j].DateTime
		if (a != nil) != (b != nil) {
			return a != nil
		}
		if a == nil {
			return false
		}
		return a.Before(*b)
	})
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9-]+`)

// OutputDirName names the output directory of a group:
// {account_id}_{start_date}_{end_date}, or just the account ID when the
// period is unknown.
func OutputDirName(accountID string, dateRange DateRange) string {
	sanitized := strings.Trim(unsafeChars.ReplaceAllString(accountID, "_"), "_")
	if sanitized == "" {
		sanitized = UnknownAccount
	}
	if r := dateRange.String(); r != "" {
		return sanitized + "_" + r
	}
	return sanitized
}
